package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carport_configurator/internal/adapter/persistence/repository"
	"carport_configurator/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// TableAPI is the part of *dynamodb.Client used to bootstrap tables.
type TableAPI interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

const tableWaitTimeout = 2 * time.Minute

// TableDefinitions returns the catalog and configuration tables of ns.
func TableDefinitions(ns entities.Namespace) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		{
			TableName: aws.String(repository.TableName(ns, repository.CatalogTableBase)),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("kind"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("kind"), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeRange},
			},
			BillingMode: types.BillingModePayPerRequest,
		},
		{
			TableName: aws.String(repository.TableName(ns, repository.ConfigurationsTableBase)),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("record_type"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("created_at"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				{
					IndexName: aws.String(repository.ConfigurationsCreatedIndex),
					KeySchema: []types.KeySchemaElement{
						{AttributeName: aws.String("record_type"), KeyType: types.KeyTypeHash},
						{AttributeName: aws.String("created_at"), KeyType: types.KeyTypeRange},
					},
					Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
				},
			},
			BillingMode: types.BillingModePayPerRequest,
		},
	}
}

// EnsureTables creates the missing tables of ns and waits until they are
// active. Existing tables are left untouched.
func EnsureTables(ctx context.Context, api TableAPI, ns entities.Namespace) error {
	for _, def := range TableDefinitions(ns) {
		name := aws.ToString(def.TableName)
		_, err := api.CreateTable(ctx, def)
		var inUse *types.ResourceInUseException
		switch {
		case errors.As(err, &inUse):
			zap.L().Info("[storage][dynamodb] table exists", zap.String("table", name))
			continue
		case err != nil:
			return fmt.Errorf("create table %s: %w", name, err)
		}

		waiter := dynamodb.NewTableExistsWaiter(api)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName}, tableWaitTimeout); err != nil {
			return fmt.Errorf("wait for table %s: %w", name, err)
		}
		zap.L().Info("[storage][dynamodb] table created", zap.String("table", name))
	}
	return nil
}
