package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDB caps a transaction at 100 actions: one put plus the reference checks.
const maxTransactItems = 100

type configurationItem struct {
	ID                 string   `dynamodbav:"id"`
	RecordType         string   `dynamodbav:"record_type"`
	ProductLine        string   `dynamodbav:"product_line"`
	StructureTypeID    string   `dynamodbav:"structure_type_id"`
	ModelID            string   `dynamodbav:"model_id"`
	SurfaceID          string   `dynamodbav:"surface_id"`
	CoverageID         string   `dynamodbav:"coverage_id"`
	ColorID            string   `dynamodbav:"color_id"`
	AccessoryIDs       []string `dynamodbav:"accessory_ids"`
	PackageID          string   `dynamodbav:"package_id,omitempty"`
	Width              int      `dynamodbav:"width"`
	Depth              int      `dynamodbav:"depth"`
	Height             int      `dynamodbav:"height"`
	CustomerName       string   `dynamodbav:"customer_name"`
	CustomerEmail      string   `dynamodbav:"customer_email"`
	CustomerPhone      string   `dynamodbav:"customer_phone"`
	CustomerAddress    string   `dynamodbav:"customer_address"`
	CustomerCity       string   `dynamodbav:"customer_city"`
	CustomerPostalCode string   `dynamodbav:"customer_postal_code"`
	ContactPreference  string   `dynamodbav:"contact_preference"`
	Notes              string   `dynamodbav:"notes,omitempty"`
	Status             string   `dynamodbav:"status"`
	TotalPrice         string   `dynamodbav:"total_price"`
	CreatedAt          string   `dynamodbav:"created_at"`
	StatusUpdatedAt    string   `dynamodbav:"status_updated_at,omitempty"`
}

// ConfigurationDynamoRepository persists configurations in DynamoDB.
//
// Table requirements (one table per namespace, "<prefix>configurations"):
//   - PK: id (string)
//   - GSI: record_type-created_at-index (PK: record_type, SK: created_at)
//
// Create is a single TransactWriteItems call: the put plus one ConditionCheck
// per referenced catalog row of the same namespace, so a row deactivated
// between validation and write cancels the whole transaction.

type ConfigurationDynamoRepository struct {
	ddb DynamoDBAPI
}

var _ interfaces.IConfigurationRepository = (*ConfigurationDynamoRepository)(nil)

func NewConfigurationDynamoRepository(ddb DynamoDBAPI) *ConfigurationDynamoRepository {
	return &ConfigurationDynamoRepository{ddb: ddb}
}

func (r *ConfigurationDynamoRepository) Create(ctx context.Context, ns entities.Namespace, c entities.Configuration) (entities.Configuration, error) {
	if !c.Status.Valid() || !c.Customer.ContactPreference.Valid() || c.ProductLine != ns.Line() {
		return entities.Configuration{}, interfaces.ErrConstraintViolation
	}
	refs := c.References()
	if len(refs)+1 > maxTransactItems {
		return entities.Configuration{}, interfaces.ErrConstraintViolation
	}

	av, err := attributevalue.MarshalMap(toConfigurationItem(c))
	if err != nil {
		return entities.Configuration{}, err
	}

	items := make([]types.TransactWriteItem, 0, len(refs)+1)
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(TableName(ns, ConfigurationsTableBase)),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})
	catalogTable := aws.String(TableName(ns, CatalogTableBase))
	for _, ref := range refs {
		items = append(items, types.TransactWriteItem{
			ConditionCheck: &types.ConditionCheck{
				TableName:           catalogTable,
				Key:                 catalogKey(ref.Kind, ref.ID),
				ConditionExpression: aws.String("attribute_exists(#id) AND #active = :true"),
				ExpressionAttributeNames: map[string]string{
					"#id":     "id",
					"#active": "active",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":true": &types.AttributeValueMemberBOOL{Value: true},
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return entities.Configuration{}, transactionError(err)
	}
	return c, nil
}

// transactionError maps cancellation reasons: a failed condition on the put
// (index 0) is a duplicate id, a failed condition on any reference check is a
// constraint violation, everything else is transient.
func transactionError(err error) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return unavailable(err)
	}
	constraint := false
	for i, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) != "ConditionalCheckFailed" {
			continue
		}
		if i == 0 {
			return interfaces.ErrConflict
		}
		constraint = true
	}
	if constraint {
		return interfaces.ErrConstraintViolation
	}
	return unavailable(err)
}

func (r *ConfigurationDynamoRepository) GetByID(ctx context.Context, ns entities.Namespace, id string) (entities.Configuration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(TableName(ns, ConfigurationsTableBase)),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Configuration{}, unavailable(err)
	}
	if len(out.Item) == 0 {
		return entities.Configuration{}, interfaces.ErrNotFound
	}

	var it configurationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Configuration{}, err
	}
	return fromConfigurationItem(it)
}

// List walks the created_at index newest first, paging until the limit is
// reached because DynamoDB applies the status filter after reading a page.
func (r *ConfigurationDynamoRepository) List(ctx context.Context, ns entities.Namespace, filters entities.ConfigurationFilters) ([]entities.Configuration, error) {
	names := map[string]string{"#rt": "record_type"}
	values := map[string]types.AttributeValue{
		":rt": &types.AttributeValueMemberS{Value: configurationRecordType},
	}
	keyCond := "#rt = :rt"
	switch {
	case !filters.Since.IsZero() && !filters.Until.IsZero():
		keyCond += " AND #created_at BETWEEN :since AND :until"
	case !filters.Since.IsZero():
		keyCond += " AND #created_at >= :since"
	case !filters.Until.IsZero():
		keyCond += " AND #created_at <= :until"
	}
	if !filters.Since.IsZero() {
		names["#created_at"] = "created_at"
		values[":since"] = &types.AttributeValueMemberS{Value: formatTime(filters.Since)}
	}
	if !filters.Until.IsZero() {
		names["#created_at"] = "created_at"
		values[":until"] = &types.AttributeValueMemberS{Value: formatTime(filters.Until)}
	}

	in := &dynamodb.QueryInput{
		TableName:                 aws.String(TableName(ns, ConfigurationsTableBase)),
		IndexName:                 aws.String(ConfigurationsCreatedIndex),
		KeyConditionExpression:    aws.String(keyCond),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ScanIndexForward:          aws.Bool(false),
	}
	if filters.Status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = mergeNames(names, map[string]string{"#status": "status"})
		values[":status"] = &types.AttributeValueMemberS{Value: string(filters.Status)}
	}

	limit := filters.EffectiveLimit()
	out := make([]entities.Configuration, 0)
	for len(out) < limit {
		page, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, unavailable(err)
		}
		for _, raw := range page.Items {
			var it configurationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			c, err := fromConfigurationItem(it)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
			if len(out) == limit {
				break
			}
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = page.LastEvaluatedKey
	}
	return out, nil
}

func (r *ConfigurationDynamoRepository) Delete(ctx context.Context, ns entities.Namespace, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(TableName(ns, ConfigurationsTableBase)),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return interfaces.ErrNotFound
		}
		return unavailable(err)
	}
	return nil
}

// UpdateStatus is a conditional update on the current status. When the
// condition fails the old item tells a missing row from a concurrent change.
func (r *ConfigurationDynamoRepository) UpdateStatus(
	ctx context.Context,
	ns entities.Namespace,
	id string,
	from, to entities.ConfigurationStatus,
	at time.Time,
) (entities.Configuration, error) {
	if !to.Valid() {
		return entities.Configuration{}, interfaces.ErrConstraintViolation
	}
	names := map[string]string{
		"#status":            "status",
		"#status_updated_at": "status_updated_at",
	}
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(TableName(ns, ConfigurationsTableBase)),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #status_updated_at = :at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
			":at":   &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		ExpressionAttributeNames:            mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Configuration{}, interfaces.ErrNotFound
			}
			return entities.Configuration{}, interfaces.ErrConflict
		}
		return entities.Configuration{}, unavailable(err)
	}

	var it configurationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Configuration{}, err
	}
	return fromConfigurationItem(it)
}

// CountReferences counts configurations pointing at a catalog row through the
// created_at index.
func (r *ConfigurationDynamoRepository) CountReferences(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, id string) (int, error) {
	attr, ok := referenceAttributes[kind]
	if !ok {
		return 0, fmt.Errorf("%w: %q", entities.ErrUnknownEntityKind, kind)
	}
	filter := "#ref = :id"
	if kind == entities.KindAccessory {
		filter = "contains(#ref, :id)"
	}

	in := &dynamodb.QueryInput{
		TableName:              aws.String(TableName(ns, ConfigurationsTableBase)),
		IndexName:              aws.String(ConfigurationsCreatedIndex),
		KeyConditionExpression: aws.String("#rt = :rt"),
		FilterExpression:       aws.String(filter),
		ExpressionAttributeNames: map[string]string{
			"#rt":  "record_type",
			"#ref": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rt": &types.AttributeValueMemberS{Value: configurationRecordType},
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Select: types.SelectCount,
	}

	total := 0
	for {
		page, err := r.ddb.Query(ctx, in)
		if err != nil {
			return 0, unavailable(err)
		}
		total += int(page.Count)
		if len(page.LastEvaluatedKey) == 0 {
			return total, nil
		}
		in.ExclusiveStartKey = page.LastEvaluatedKey
	}
}

var referenceAttributes = map[entities.EntityKind]string{
	entities.KindStructureType: "structure_type_id",
	entities.KindModel:         "model_id",
	entities.KindSurface:       "surface_id",
	entities.KindCoverage:      "coverage_id",
	entities.KindColor:         "color_id",
	entities.KindAccessory:     "accessory_ids",
	entities.KindPackage:       "package_id",
}

func toConfigurationItem(c entities.Configuration) configurationItem {
	it := configurationItem{
		ID:                 c.ID,
		RecordType:         configurationRecordType,
		ProductLine:        string(c.ProductLine),
		StructureTypeID:    c.Selection.StructureTypeID,
		ModelID:            c.Selection.ModelID,
		SurfaceID:          c.Selection.SurfaceID,
		CoverageID:         c.Selection.CoverageID,
		ColorID:            c.Selection.ColorID,
		AccessoryIDs:       append([]string{}, c.Selection.AccessoryIDs...),
		PackageID:          c.Selection.PackageID,
		Width:              c.Dimensions.Width,
		Depth:              c.Dimensions.Depth,
		Height:             c.Dimensions.Height,
		CustomerName:       c.Customer.Name,
		CustomerEmail:      c.Customer.Email,
		CustomerPhone:      c.Customer.Phone,
		CustomerAddress:    c.Customer.Address,
		CustomerCity:       c.Customer.City,
		CustomerPostalCode: c.Customer.PostalCode,
		ContactPreference:  string(c.Customer.ContactPreference),
		Notes:              c.Customer.Notes,
		Status:             string(c.Status),
		TotalPrice:         c.TotalPrice.String(),
		CreatedAt:          formatTime(c.CreatedAt),
	}
	if c.StatusUpdatedAt != nil {
		it.StatusUpdatedAt = formatTime(*c.StatusUpdatedAt)
	}
	return it
}

func fromConfigurationItem(it configurationItem) (entities.Configuration, error) {
	total, err := entities.ParseMoney(it.TotalPrice)
	if err != nil {
		return entities.Configuration{}, fmt.Errorf("configuration %s: %w", it.ID, err)
	}
	c := entities.Configuration{
		ID:          it.ID,
		ProductLine: entities.ProductLine(it.ProductLine),
		Selection: entities.Selection{
			StructureTypeID: it.StructureTypeID,
			ModelID:         it.ModelID,
			SurfaceID:       it.SurfaceID,
			CoverageID:      it.CoverageID,
			ColorID:         it.ColorID,
			PackageID:       it.PackageID,
		},
		Dimensions: entities.Dimensions{Width: it.Width, Depth: it.Depth, Height: it.Height},
		Customer: entities.CustomerDetails{
			Name:              it.CustomerName,
			Email:             it.CustomerEmail,
			Phone:             it.CustomerPhone,
			Address:           it.CustomerAddress,
			City:              it.CustomerCity,
			PostalCode:        it.CustomerPostalCode,
			ContactPreference: entities.ContactPreference(it.ContactPreference),
			Notes:             it.Notes,
		},
		TotalPrice: total,
		Status:     entities.ConfigurationStatus(it.Status),
		CreatedAt:  parseTime(it.CreatedAt),
	}
	if len(it.AccessoryIDs) > 0 {
		c.Selection.AccessoryIDs = it.AccessoryIDs
	}
	if it.StatusUpdatedAt != "" {
		t := parseTime(it.StatusUpdatedAt)
		c.StatusUpdatedAt = &t
	}
	return c, nil
}
