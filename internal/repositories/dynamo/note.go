// Package dynamo implements the note store on an Amazon DynamoDB table
// keyed by the "notesId" attribute.
package dynamo

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"

	"notes-api/internal/models"
	"notes-api/internal/repositories"
)

// KeyAttribute is the partition key of the notes table
const KeyAttribute = "notesId"

// API is the subset of the DynamoDB client used by NoteRepository
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// NoteRepository implements repositories.NoteRepository for DynamoDB
type NoteRepository struct {
	client API
	table  string
	logger *logrus.Logger
}

// NewNoteRepository creates a DynamoDB note repository for the given table
func NewNoteRepository(client API, table string, logger *logrus.Logger) *NoteRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &NoteRepository{
		client: client,
		table:  table,
		logger: logger,
	}
}

// Create writes the note only if no item with its ID exists
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	if err := repositories.ValidateID("create", repositories.EntityNote, note.ID); err != nil {
		return err
	}

	item, err := attributevalue.MarshalMap(note)
	if err != nil {
		return repositories.NewRepositoryError("create", repositories.EntityNote, note.ID, err)
	}

	expr, err := expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name(KeyAttribute))).
		Build()
	if err != nil {
		return repositories.NewRepositoryError("create", repositories.EntityNote, note.ID, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.table),
		Item:                     item,
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		return r.translate("create", note.ID, err)
	}

	r.logger.WithField("id", note.ID).Debug("Note created")
	return nil
}

// Update sets title and body on an existing item
func (r *NoteRepository) Update(ctx context.Context, id string, content *models.NoteContent) error {
	if err := repositories.ValidateID("update", repositories.EntityNote, id); err != nil {
		return err
	}

	update := expression.
		Set(expression.Name("title"), expression.Value(content.Title)).
		Set(expression.Name("body"), expression.Value(content.Body))

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(expression.AttributeExists(expression.Name(KeyAttribute))).
		Build()
	if err != nil {
		return repositories.NewRepositoryError("update", repositories.EntityNote, id, err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       keyOf(id),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return r.translate("update", id, err)
	}

	r.logger.WithField("id", id).Debug("Note updated")
	return nil
}

// Delete removes an existing item
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	if err := repositories.ValidateID("delete", repositories.EntityNote, id); err != nil {
		return err
	}

	expr, err := expression.NewBuilder().
		WithCondition(expression.AttributeExists(expression.Name(KeyAttribute))).
		Build()
	if err != nil {
		return repositories.NewRepositoryError("delete", repositories.EntityNote, id, err)
	}

	_, err = r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.table),
		Key:                      keyOf(id),
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		return r.translate("delete", id, err)
	}

	r.logger.WithField("id", id).Debug("Note deleted")
	return nil
}

// Get queries the partition key for at most one item
func (r *NoteRepository) Get(ctx context.Context, id string) (*models.Note, error) {
	if err := repositories.ValidateID("get", repositories.EntityNote, id); err != nil {
		return nil, err
	}

	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key(KeyAttribute).Equal(expression.Value(id))).
		Build()
	if err != nil {
		return nil, repositories.NewRepositoryError("get", repositories.EntityNote, id, err)
	}

	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return nil, r.translate("get", id, err)
	}

	if len(out.Items) != 1 {
		return nil, repositories.NotFoundError(repositories.EntityNote, id)
	}

	note := &models.Note{}
	if err := attributevalue.UnmarshalMap(out.Items[0], note); err != nil {
		return nil, repositories.NewRepositoryError("get", repositories.EntityNote, id, err)
	}

	return note, nil
}

// List scans the whole table, following LastEvaluatedKey until exhausted
func (r *NoteRepository) List(ctx context.Context) ([]*models.Note, error) {
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})

	notes := make([]*models.Note, 0)
	pages := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, r.translate("list", "", err)
		}
		pages++

		for _, item := range page.Items {
			note := &models.Note{}
			if err := attributevalue.UnmarshalMap(item, note); err != nil {
				return nil, repositories.NewRepositoryError("list", repositories.EntityNote, "", err)
			}
			notes = append(notes, note)
		}
	}

	r.logger.WithFields(logrus.Fields{
		"count": len(notes),
		"pages": pages,
	}).Debug("Notes scanned")

	return notes, nil
}

// Close is a no-op; the SDK client holds no resources that need releasing
func (r *NoteRepository) Close() error {
	return nil
}

// translate maps SDK errors onto the repository error taxonomy
func (r *NoteRepository) translate(op, id string, err error) error {
	var conditionFailed *types.ConditionalCheckFailedException
	if errors.As(err, &conditionFailed) {
		return repositories.ConditionFailedError(op, repositories.EntityNote, id)
	}
	return repositories.UnavailableError(op, repositories.EntityNote, id, err)
}

func keyOf(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		KeyAttribute: &types.AttributeValueMemberS{Value: id},
	}
}
