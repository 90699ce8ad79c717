package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConfiguration() entities.Configuration {
	return entities.Configuration{
		ID:          "0b9c5c1e-9b8e-5e8f-8d52-6b1f1b4a2c11",
		ProductLine: entities.ProductLineWood,
		Selection: entities.Selection{
			StructureTypeID: "addossato",
			ModelID:         "classic",
			SurfaceID:       "gravel",
			CoverageID:      "polycarbonate",
			ColorID:         "natural",
			AccessoryIDs:    []string{"gutter", "light"},
		},
		Dimensions: entities.Dimensions{Width: 500, Depth: 300, Height: 250},
		Customer: entities.CustomerDetails{
			Name:              "Ada Rossi",
			Email:             "ada@example.com",
			Phone:             "+39 333 1234567",
			Address:           "Via Roma 1",
			City:              "Torino",
			PostalCode:        "10100",
			ContactPreference: entities.ContactEmail,
		},
		TotalPrice: 153500,
		Status:     entities.StatusPending,
		CreatedAt:  time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestConfigurationItemRoundTrip(t *testing.T) {
	c := sampleConfiguration()
	updated := c.CreatedAt.Add(time.Hour)
	c.StatusUpdatedAt = &updated

	av, err := attributevalue.MarshalMap(toConfigurationItem(c))
	require.NoError(t, err)
	var it configurationItem
	require.NoError(t, attributevalue.UnmarshalMap(av, &it))
	got, err := fromConfigurationItem(it)
	require.NoError(t, err)
	assert.Equal(t, c, got)
	assert.Equal(t, "1535.00", it.TotalPrice)
}

func TestConfigurationDynamoRepository_CreateTransaction(t *testing.T) {
	fake := &fakeDynamoDB{}
	repo := NewConfigurationDynamoRepository(fake)

	_, err := repo.Create(context.Background(), wood, sampleConfiguration())
	require.NoError(t, err)

	items := fake.lastTx.TransactItems
	// put + 5 required references + 2 accessories
	require.Len(t, items, 8)
	require.NotNil(t, items[0].Put)
	assert.Equal(t, "wood_configurations", aws.ToString(items[0].Put.TableName))
	assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(items[0].Put.ConditionExpression))
	for _, it := range items[1:] {
		require.NotNil(t, it.ConditionCheck)
		assert.Equal(t, "wood_catalog", aws.ToString(it.ConditionCheck.TableName))
	}
	last := items[7].ConditionCheck.Key
	assert.Equal(t, "accessory", last["kind"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "light", last["id"].(*types.AttributeValueMemberS).Value)
}

func TestConfigurationDynamoRepository_CreateRejectsBeforeWriting(t *testing.T) {
	fake := &fakeDynamoDB{}
	repo := NewConfigurationDynamoRepository(fake)

	wrongLine := sampleConfiguration()
	_, err := repo.Create(context.Background(), iron, wrongLine)
	assert.ErrorIs(t, err, interfaces.ErrConstraintViolation)

	badContact := sampleConfiguration()
	badContact.Customer.ContactPreference = "pigeon"
	_, err = repo.Create(context.Background(), wood, badContact)
	assert.ErrorIs(t, err, interfaces.ErrConstraintViolation)

	assert.Nil(t, fake.lastTx)
}

func TestConfigurationDynamoRepository_CreateCancellation(t *testing.T) {
	none := types.CancellationReason{Code: aws.String("None")}
	failed := types.CancellationReason{Code: aws.String("ConditionalCheckFailed")}

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "duplicate id",
			err:     &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{failed, none, none}},
			wantErr: interfaces.ErrConflict,
		},
		{
			name:    "inactive reference",
			err:     &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{none, none, failed}},
			wantErr: interfaces.ErrConstraintViolation,
		},
		{
			name:    "throttled",
			err:     &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{{Code: aws.String("ThrottlingError")}}},
			wantErr: interfaces.ErrStorageUnavailable,
		},
		{
			name:    "network",
			err:     errors.New("dial tcp: i/o timeout"),
			wantErr: interfaces.ErrStorageUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeDynamoDB{transactions: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, tt.err
			}}
			_, err := NewConfigurationDynamoRepository(fake).Create(context.Background(), wood, sampleConfiguration())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfigurationDynamoRepository_GetByID(t *testing.T) {
	av, err := attributevalue.MarshalMap(toConfigurationItem(sampleConfiguration()))
	require.NoError(t, err)

	fake := &fakeDynamoDB{getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		if in.Key["id"].(*types.AttributeValueMemberS).Value == sampleConfiguration().ID {
			return &dynamodb.GetItemOutput{Item: av}, nil
		}
		return &dynamodb.GetItemOutput{}, nil
	}}
	repo := NewConfigurationDynamoRepository(fake)

	got, err := repo.GetByID(context.Background(), wood, sampleConfiguration().ID)
	require.NoError(t, err)
	assert.Equal(t, sampleConfiguration(), got)

	_, err = repo.GetByID(context.Background(), wood, "missing")
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestConfigurationDynamoRepository_ListQuery(t *testing.T) {
	av, err := attributevalue.MarshalMap(toConfigurationItem(sampleConfiguration()))
	require.NoError(t, err)
	fake := &fakeDynamoDB{query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		return &dynamodb.QueryOutput{
			Items:            []map[string]types.AttributeValue{av, av},
			LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "x"}},
		}, nil
	}}

	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	got, err := NewConfigurationDynamoRepository(fake).List(context.Background(), wood, entities.ConfigurationFilters{
		Status: entities.StatusPending,
		Since:  since,
		Limit:  3,
	})
	require.NoError(t, err)
	assert.Len(t, got, 3)
	require.Len(t, fake.queries, 2)

	q := fake.queries[0]
	assert.Equal(t, ConfigurationsCreatedIndex, aws.ToString(q.IndexName))
	assert.False(t, aws.ToBool(q.ScanIndexForward))
	assert.Equal(t, "#rt = :rt AND #created_at >= :since", aws.ToString(q.KeyConditionExpression))
	assert.Equal(t, "#status = :status", aws.ToString(q.FilterExpression))
	assert.Equal(t, "2026-01-01T00:00:00.000000000Z", q.ExpressionAttributeValues[":since"].(*types.AttributeValueMemberS).Value)
}

func TestConfigurationDynamoRepository_UpdateStatus(t *testing.T) {
	at := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)

	t.Run("applied", func(t *testing.T) {
		c := sampleConfiguration()
		c.Status = entities.StatusConfirmed
		c.StatusUpdatedAt = &at
		av, err := attributevalue.MarshalMap(toConfigurationItem(c))
		require.NoError(t, err)
		fake := &fakeDynamoDB{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return &dynamodb.UpdateItemOutput{Attributes: av}, nil
		}}

		got, err := NewConfigurationDynamoRepository(fake).UpdateStatus(context.Background(), wood, c.ID, entities.StatusPending, entities.StatusConfirmed, at)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusConfirmed, got.Status)
		assert.Equal(t, "pending", fake.lastUpd.ExpressionAttributeValues[":from"].(*types.AttributeValueMemberS).Value)
		assert.Equal(t, types.ReturnValuesOnConditionCheckFailureAllOld, fake.lastUpd.ReturnValuesOnConditionCheckFailure)
	})

	t.Run("missing row", func(t *testing.T) {
		fake := &fakeDynamoDB{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		}}
		_, err := NewConfigurationDynamoRepository(fake).UpdateStatus(context.Background(), wood, "x", entities.StatusPending, entities.StatusConfirmed, at)
		assert.ErrorIs(t, err, interfaces.ErrNotFound)
	})

	t.Run("concurrent change", func(t *testing.T) {
		fake := &fakeDynamoDB{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{Item: map[string]types.AttributeValue{
				"status": &types.AttributeValueMemberS{Value: "cancelled"},
			}}
		}}
		_, err := NewConfigurationDynamoRepository(fake).UpdateStatus(context.Background(), wood, "x", entities.StatusPending, entities.StatusConfirmed, at)
		assert.ErrorIs(t, err, interfaces.ErrConflict)
	})
}

func TestConfigurationDynamoRepository_CountReferences(t *testing.T) {
	calls := 0
	fake := &fakeDynamoDB{query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		calls++
		if calls == 1 {
			return &dynamodb.QueryOutput{Count: 2, LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "k"}}}, nil
		}
		return &dynamodb.QueryOutput{Count: 1}, nil
	}}
	repo := NewConfigurationDynamoRepository(fake)

	n, err := repo.CountReferences(context.Background(), wood, entities.KindAccessory, "gutter")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "contains(#ref, :id)", aws.ToString(fake.queries[0].FilterExpression))
	assert.Equal(t, "accessory_ids", fake.queries[0].ExpressionAttributeNames["#ref"])
	assert.Equal(t, types.SelectCount, fake.queries[0].Select)

	_, err = repo.CountReferences(context.Background(), wood, entities.EntityKind("roof"), "x")
	assert.ErrorIs(t, err, entities.ErrUnknownEntityKind)
}
