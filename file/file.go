package file

import (
	"path/filepath"

	"github.com/jsphweid/genecomposer/model"
	"github.com/jsphweid/genecomposer/util"
)

func CreateFileNumMap(paths []string) model.FileNumToMidiPath {
	res := make(model.FileNumToMidiPath, len(paths))
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}

// CreateOutputMap pairs every numbered input with the path its variation
// is written to. An empty outDir keeps variations next to their sources.
func CreateOutputMap(m model.FileNumToMidiPath, outDir string) model.FileNumToMidiPath {
	res := make(model.FileNumToMidiPath, len(m))
	for num, path := range m {
		out := util.VariationPath(path)
		if outDir != "" {
			out = filepath.Join(outDir, filepath.Base(out))
		}
		res[num] = out
	}
	return res
}
