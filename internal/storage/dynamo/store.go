package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/tair/favorites-service/pkg/logger"
)

// Tables names the three tables of a store.
type Tables struct {
	Clients   string
	Products  string
	Favorites string
}

func TablesWithPrefix(prefix string) Tables {
	return Tables{
		Clients:   prefix + "clients",
		Products:  prefix + "products",
		Favorites: prefix + "favorites",
	}
}

// Store holds the DynamoDB client and table names.
type Store struct {
	api    API
	tables Tables
}

// NewStore wraps api without touching the tables. Call EnsureTables before
// first use against a fresh account or DynamoDB Local.
func NewStore(api API, tables Tables) *Store {
	return &Store{api: api, tables: tables}
}

func (s *Store) Clients() *ClientRepository {
	return &ClientRepository{s: s}
}

func (s *Store) Products() *ProductRepository {
	return &ProductRepository{s: s}
}

func (s *Store) Favorites() *FavoriteRepository {
	return &FavoriteRepository{s: s}
}

// Ping describes the clients table.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.tables.Clients)})
	return err
}

// EnsureTables creates any missing table and waits until all are active.
func (s *Store) EnsureTables(ctx context.Context) error {
	specs := []struct {
		name string
		keys []string
	}{
		{s.tables.Clients, []string{"id"}},
		{s.tables.Products, []string{"id"}},
		{s.tables.Favorites, []string{"client_id", "product_id"}},
	}

	for _, spec := range specs {
		if err := s.createTableIfNotExists(ctx, spec.name, spec.keys); err != nil {
			return err
		}
	}

	waiter := dynamodb.NewTableExistsWaiter(s.api)
	for _, spec := range specs {
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.name)}, time.Minute); err != nil {
			return fmt.Errorf("table %s not ready: %w", spec.name, err)
		}
	}
	return nil
}

// createTableIfNotExists creates a table keyed by numeric attributes: the
// first is the hash key, the optional second the range key.
func (s *Store) createTableIfNotExists(ctx context.Context, table string, keys []string) error {
	attrs := make([]types.AttributeDefinition, 0, len(keys))
	schema := make([]types.KeySchemaElement, 0, len(keys))
	for i, k := range keys {
		keyType := types.KeyTypeHash
		if i > 0 {
			keyType = types.KeyTypeRange
		}
		attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(k), AttributeType: types.ScalarAttributeTypeN})
		schema = append(schema, types.KeySchemaElement{AttributeName: aws.String(k), KeyType: keyType})
	}

	_, err := s.api.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:            aws.String(table),
		AttributeDefinitions: attrs,
		KeySchema:            schema,
		BillingMode:          types.BillingModePayPerRequest,
	})
	var inUse *types.ResourceInUseException
	if err != nil && !errors.As(err, &inUse) {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	if err == nil {
		logger.Logger.Info().Str("table", table).Msg("DynamoDB table created")
	}
	return nil
}

// scanAll reads every item of table that matches filter (optional).
func scanAll[T any](ctx context.Context, api API, table, filter string, values map[string]types.AttributeValue) ([]T, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(table), ConsistentRead: aws.Bool(true)}
	if filter != "" {
		input.FilterExpression = aws.String(filter)
		input.ExpressionAttributeValues = values
	}

	out := []T{}
	pages := dynamodb.NewScanPaginator(api, input)
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// queryAll reads every item of the partition selected by keyCond.
func queryAll[T any](ctx context.Context, api API, table, keyCond string, values map[string]types.AttributeValue) ([]T, error) {
	pages := dynamodb.NewQueryPaginator(api, &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		KeyConditionExpression:    aws.String(keyCond),
		ExpressionAttributeValues: values,
		ConsistentRead:            aws.Bool(true),
	})

	out := []T{}
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// countAll counts the items of table.
func countAll(ctx context.Context, api API, table string) (int64, error) {
	pages := dynamodb.NewScanPaginator(api, &dynamodb.ScanInput{
		TableName: aws.String(table),
		Select:    types.SelectCount,
	})
	var total int64
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int64(page.Count)
	}
	return total, nil
}

// getItem loads one item into dst, reporting whether it exists.
func getItem(ctx context.Context, api API, table string, key map[string]types.AttributeValue, dst any) (bool, error) {
	out, err := api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if out.Item == nil {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(out.Item, dst)
}

// putItem writes v under condition (optional).
func putItem(ctx context.Context, api API, table string, v any, condition string) error {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return err
	}
	input := &dynamodb.PutItemInput{TableName: aws.String(table), Item: item}
	if condition != "" {
		input.ConditionExpression = aws.String(condition)
	}
	_, err = api.PutItem(ctx, input)
	return err
}

// deleteItem removes the item under key; it fails the condition check when
// condition is set and not met.
func deleteItem(ctx context.Context, api API, table string, key map[string]types.AttributeValue, condition string) error {
	input := &dynamodb.DeleteItemInput{TableName: aws.String(table), Key: key}
	if condition != "" {
		input.ConditionExpression = aws.String(condition)
	}
	_, err := api.DeleteItem(ctx, input)
	return err
}
