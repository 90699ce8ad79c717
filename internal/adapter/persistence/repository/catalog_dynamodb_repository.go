package repository

import (
	"context"
	"fmt"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type limitsItem struct {
	WidthMin  int `dynamodbav:"width_min"`
	WidthMax  int `dynamodbav:"width_max"`
	DepthMin  int `dynamodbav:"depth_min"`
	DepthMax  int `dynamodbav:"depth_max"`
	HeightMin int `dynamodbav:"height_min"`
	HeightMax int `dynamodbav:"height_max"`
}

// catalogItem is the single item shape of every catalog kind; fields a kind
// does not use are omitted.
type catalogItem struct {
	Kind        string      `dynamodbav:"kind"`
	ID          string      `dynamodbav:"id"`
	Name        string      `dynamodbav:"name"`
	Active      bool        `dynamodbav:"active"`
	SortOrder   int         `dynamodbav:"sort_order"`
	CreatedAt   string      `dynamodbav:"created_at"`
	UpdatedAt   string      `dynamodbav:"updated_at"`
	Description string      `dynamodbav:"description,omitempty"`
	ImageURL    string      `dynamodbav:"image_url,omitempty"`
	Icon        string      `dynamodbav:"icon,omitempty"`
	HexValue    string      `dynamodbav:"hex_value,omitempty"`
	Category    string      `dynamodbav:"category,omitempty"`
	Price       string      `dynamodbav:"price,omitempty"`
	Contents    []string    `dynamodbav:"contents,omitempty"`
	Limits      *limitsItem `dynamodbav:"limits,omitempty"`
}

// CatalogDynamoRepository persists catalog rows in DynamoDB.
//
// Table requirements (one table per namespace, "<prefix>catalog"):
//   - PK: kind (string)
//   - SK: id (string)
//
// Prices are stored as decimal text with two fraction digits.

type CatalogDynamoRepository struct {
	ddb DynamoDBAPI
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb DynamoDBAPI) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{ddb: ddb}
}

func (r *CatalogDynamoRepository) ListActive(ctx context.Context, ns entities.Namespace, kind entities.EntityKind) ([]entities.CatalogEntity, error) {
	return r.query(ctx, ns, kind, true)
}

func (r *CatalogDynamoRepository) ListAll(ctx context.Context, ns entities.Namespace, kind entities.EntityKind) ([]entities.CatalogEntity, error) {
	return r.query(ctx, ns, kind, false)
}

func (r *CatalogDynamoRepository) query(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, activeOnly bool) ([]entities.CatalogEntity, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(TableName(ns, CatalogTableBase)),
		KeyConditionExpression: aws.String("#kind = :kind"),
		ExpressionAttributeNames: map[string]string{
			"#kind": "kind",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kind": &types.AttributeValueMemberS{Value: string(kind)},
		},
	}
	if activeOnly {
		in.FilterExpression = aws.String("#active = :true")
		in.ExpressionAttributeNames["#active"] = "active"
		in.ExpressionAttributeValues[":true"] = &types.AttributeValueMemberBOOL{Value: true}
	}

	var out []entities.CatalogEntity
	for {
		page, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, unavailable(err)
		}
		for _, raw := range page.Items {
			var it catalogItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			e, err := fromCatalogItem(it)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = page.LastEvaluatedKey
	}
	entities.SortCatalog(out)
	return out, nil
}

func (r *CatalogDynamoRepository) GetByID(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, id string) (entities.CatalogEntity, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(TableName(ns, CatalogTableBase)),
		Key:            catalogKey(kind, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, unavailable(err)
	}
	if len(out.Item) == 0 {
		return nil, interfaces.ErrNotFound
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromCatalogItem(it)
}

func (r *CatalogDynamoRepository) Create(ctx context.Context, ns entities.Namespace, e entities.CatalogEntity) (entities.CatalogEntity, error) {
	if err := r.put(ctx, ns, e, "attribute_not_exists(#id)"); err != nil {
		if isConditionFailed(err) {
			return nil, interfaces.ErrConflict
		}
		return nil, unavailable(err)
	}
	return e, nil
}

func (r *CatalogDynamoRepository) Update(ctx context.Context, ns entities.Namespace, e entities.CatalogEntity) (entities.CatalogEntity, error) {
	if err := r.put(ctx, ns, e, "attribute_exists(#id)"); err != nil {
		if isConditionFailed(err) {
			return nil, interfaces.ErrNotFound
		}
		return nil, unavailable(err)
	}
	return e, nil
}

func (r *CatalogDynamoRepository) put(ctx context.Context, ns entities.Namespace, e entities.CatalogEntity, condition string) error {
	av, err := attributevalue.MarshalMap(toCatalogItem(e))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(TableName(ns, CatalogTableBase)),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *CatalogDynamoRepository) Delete(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(TableName(ns, CatalogTableBase)),
		Key:                 catalogKey(kind, id),
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

func catalogKey(kind entities.EntityKind, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"kind": &types.AttributeValueMemberS{Value: string(kind)},
		"id":   &types.AttributeValueMemberS{Value: id},
	}
}

func toCatalogItem(e entities.CatalogEntity) catalogItem {
	m := e.Meta()
	it := catalogItem{
		Kind:      string(e.Kind()),
		ID:        m.ID,
		Name:      m.Name,
		Active:    m.Active,
		SortOrder: m.SortOrder,
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
	}
	switch v := e.(type) {
	case entities.Model:
		it.Description, it.ImageURL, it.Price = v.Description, v.ImageURL, v.BasePrice.String()
	case entities.StructureType:
		it.Description, it.ImageURL = v.Description, v.ImageURL
		if !v.Limits.IsZero() {
			it.Limits = &limitsItem{
				WidthMin: v.Limits.Width.Min, WidthMax: v.Limits.Width.Max,
				DepthMin: v.Limits.Depth.Min, DepthMax: v.Limits.Depth.Max,
				HeightMin: v.Limits.Height.Min, HeightMax: v.Limits.Height.Max,
			}
		}
	case entities.CoverageType:
		it.Description, it.ImageURL, it.Price = v.Description, v.ImageURL, v.PriceModifier.String()
	case entities.Color:
		it.HexValue, it.Category, it.Price = v.HexValue, string(v.Category), v.PriceModifier.String()
	case entities.Surface:
		it.ImageURL, it.Price = v.ImageURL, v.PriceModifier.String()
	case entities.Accessory:
		it.Icon, it.ImageURL, it.Price = v.Icon, v.ImageURL, v.PriceModifier.String()
	case entities.Package:
		it.Contents, it.Price = append([]string(nil), v.Contents...), v.Price.String()
	}
	return it
}

func fromCatalogItem(it catalogItem) (entities.CatalogEntity, error) {
	kind, err := entities.ParseEntityKind(it.Kind)
	if err != nil {
		return nil, err
	}
	var price entities.Money
	if it.Price != "" {
		if price, err = entities.ParseMoney(it.Price); err != nil {
			return nil, fmt.Errorf("catalog %s/%s: %w", it.Kind, it.ID, err)
		}
	}
	meta := entities.CatalogMeta{
		ID:        it.ID,
		Name:      it.Name,
		Active:    it.Active,
		SortOrder: it.SortOrder,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}

	switch kind {
	case entities.KindModel:
		return entities.Model{CatalogMeta: meta, Description: it.Description, BasePrice: price, ImageURL: it.ImageURL}, nil
	case entities.KindStructureType:
		st := entities.StructureType{CatalogMeta: meta, Description: it.Description, ImageURL: it.ImageURL}
		if l := it.Limits; l != nil {
			st.Limits = entities.DimensionLimits{
				Width:  entities.Range{Min: l.WidthMin, Max: l.WidthMax},
				Depth:  entities.Range{Min: l.DepthMin, Max: l.DepthMax},
				Height: entities.Range{Min: l.HeightMin, Max: l.HeightMax},
			}
		}
		return st, nil
	case entities.KindCoverage:
		return entities.CoverageType{CatalogMeta: meta, Description: it.Description, ImageURL: it.ImageURL, PriceModifier: price}, nil
	case entities.KindColor:
		return entities.Color{CatalogMeta: meta, HexValue: it.HexValue, Category: entities.ColorCategory(it.Category), PriceModifier: price}, nil
	case entities.KindSurface:
		return entities.Surface{CatalogMeta: meta, PriceModifier: price, ImageURL: it.ImageURL}, nil
	case entities.KindAccessory:
		return entities.Accessory{CatalogMeta: meta, Icon: it.Icon, ImageURL: it.ImageURL, PriceModifier: price}, nil
	default:
		return entities.Package{CatalogMeta: meta, Contents: it.Contents, Price: price}, nil
	}
}
