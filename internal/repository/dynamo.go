package repository

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "messagemural/internal/errors"
	"messagemural/internal/models"
	"messagemural/internal/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoAPI is the subset of the DynamoDB client the repo calls.
type DynamoAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type DynamoRepo struct {
	client DynamoAPI
	table  string
	log    *slog.Logger
}

func NewDynamoRepo(client DynamoAPI, table string, log *slog.Logger) *DynamoRepo {
	return &DynamoRepo{client: client, table: table, log: log}
}

// NewDynamoClient builds the shared client. A local endpoint gets the dummy
// static credentials DynamoDB Local accepts.
func NewDynamoClient(ctx context.Context, region, localEndpoint string) (*dynamodb.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if localEndpoint != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("dummy", "dummy", "")))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if localEndpoint != "" {
			o.BaseEndpoint = aws.String(localEndpoint)
		}
	}), nil
}

var _ service.MessageStore = (*DynamoRepo)(nil)

// ListAll issues a single Scan; results past the first page are not fetched.
func (r *DynamoRepo) ListAll(ctx context.Context) ([]models.Message, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.table)})
	if err != nil {
		r.log.Error("Error fetching messages", "table", r.table, "error", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	messages := []models.Message{}
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &messages); err != nil {
		r.log.Error("Error decoding messages", "table", r.table, "error", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return messages, nil
}

func (r *DynamoRepo) Insert(ctx context.Context, message models.Message) error {
	item, err := attributevalue.MarshalMap(message)
	if err != nil {
		r.log.Error("Error encoding message", "id", message.ID, "error", err)
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		r.log.Error("Error creating message", "table", r.table, "id", message.ID, "error", err)
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}
