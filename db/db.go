package db

import (
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/jsphweid/genecomposer/constants"
	"github.com/jsphweid/genecomposer/model"
	"github.com/pkg/errors"
)

func newClient() (*dynamodb.DynamoDB, error) {
	cfg := &aws.Config{Region: aws.String(constants.GetAwsRegion())}
	if endpoint := constants.GetDynamoEndpoint(); endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "Could not create a new DynamoDB session")
	}
	return dynamodb.New(sess), nil
}

func itemFor(r model.RunRecord) map[string]*dynamodb.AttributeValue {
	item := map[string]*dynamodb.AttributeValue{
		"PK":           {S: aws.String(r.Id)},
		"Seed":         {N: aws.String(strconv.FormatInt(r.Seed, 10))},
		"Generations":  {N: aws.String(strconv.Itoa(r.Generations))},
		"StartFitness": {N: aws.String(strconv.FormatFloat(r.StartFitness, 'f', -1, 64))},
		"FinalFitness": {N: aws.String(strconv.FormatFloat(r.FinalFitness, 'f', -1, 64))},
		"CreatedAt":    {S: aws.String(r.CreatedAt.UTC().Format(time.RFC3339))},
	}
	if r.Source != "" {
		item["Source"] = &dynamodb.AttributeValue{S: aws.String(r.Source)}
	}
	if len(r.Notes) > 0 {
		item["Notes"] = &dynamodb.AttributeValue{L: noteList(r.Notes)}
	}
	return item
}

func noteList(notes []string) []*dynamodb.AttributeValue {
	res := make([]*dynamodb.AttributeValue, len(notes))
	for i, n := range notes {
		res[i] = &dynamodb.AttributeValue{S: aws.String(n)}
	}
	return res
}

// RecordRun stores the outcome of a run in the variations table.
func RecordRun(r model.RunRecord) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	_, err = client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(constants.GetVariationsTable()),
		Item:      itemFor(r),
	})
	return errors.Wrap(err, "Error from DynamoDB")
}
