package repository

import (
	"context"
	"strconv"
	"time"

	"floorcraft/internal/domain/entities"
	"floorcraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCatalogsTableName = "catalogs"

type catalogEntryItem struct {
	Key        string `dynamodbav:"key"`
	Name       string `dynamodbav:"name"`
	Price      string `dynamodbav:"price,omitempty"`
	Multiplier string `dynamodbav:"multiplier,omitempty"`
}

type catalogItem struct {
	ContractorID string                      `dynamodbav:"contractor_id"`
	FloorTypes   map[string]catalogEntryItem `dynamodbav:"floor_types,omitempty"`
	FloorSizes   map[string]catalogEntryItem `dynamodbav:"floor_sizes,omitempty"`
	Finishes     map[string]catalogEntryItem `dynamodbav:"finishes,omitempty"`
	Stains       map[string]catalogEntryItem `dynamodbav:"stains,omitempty"`
	CreatedAt    string                      `dynamodbav:"created_at"`
	UpdatedAt    string                      `dynamodbav:"updated_at"`
}

// CatalogDynamoRepository persists contractor price templates in DynamoDB.
//
// Table requirements:
//   - PK: contractor_id (string) — one active catalog per contractor
//
// Save is an upsert; the catalog is versionless and the latest write wins.
type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOGS_TABLE", defaultCatalogsTableName),
	}
}

func (r *CatalogDynamoRepository) GetByContractorID(ctx context.Context, contractorID string) (entities.Catalog, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"contractor_id": &types.AttributeValueMemberS{Value: contractorID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Catalog{}, err
	}
	if len(out.Item) == 0 {
		return entities.Catalog{}, nil
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Catalog{}, err
	}
	return fromCatalogItem(it), nil
}

func (r *CatalogDynamoRepository) Save(ctx context.Context, c entities.Catalog) (entities.Catalog, error) {
	av, err := attributevalue.MarshalMap(toCatalogItem(c))
	if err != nil {
		return entities.Catalog{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Catalog{}, err
	}
	return c, nil
}

func toCatalogItem(c entities.Catalog) catalogItem {
	return catalogItem{
		ContractorID: c.ContractorID,
		FloorTypes:   toEntryItems(c.FloorTypes),
		FloorSizes:   toEntryItems(c.FloorSizes),
		Finishes:     toEntryItems(c.Finishes),
		Stains:       toEntryItems(c.Stains),
		CreatedAt:    c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCatalogItem(it catalogItem) entities.Catalog {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Catalog{
		ContractorID: it.ContractorID,
		FloorTypes:   fromEntryItems(it.FloorTypes),
		FloorSizes:   fromEntryItems(it.FloorSizes),
		Finishes:     fromEntryItems(it.Finishes),
		Stains:       fromEntryItems(it.Stains),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

func toEntryItems(entries map[string]entities.CatalogEntry) map[string]catalogEntryItem {
	if len(entries) == 0 {
		return nil
	}
	out := make(map[string]catalogEntryItem, len(entries))
	for k, e := range entries {
		it := catalogEntryItem{Key: e.Key, Name: e.Name}
		if e.Price != 0 {
			it.Price = floatToString(e.Price)
		}
		if e.Multiplier != 0 {
			it.Multiplier = floatToString(e.Multiplier)
		}
		out[k] = it
	}
	return out
}

func fromEntryItems(items map[string]catalogEntryItem) map[string]entities.CatalogEntry {
	if len(items) == 0 {
		return nil
	}
	out := make(map[string]entities.CatalogEntry, len(items))
	for k, it := range items {
		price, _ := strconv.ParseFloat(it.Price, 64)
		mult, _ := strconv.ParseFloat(it.Multiplier, 64)
		out[k] = entities.CatalogEntry{Key: it.Key, Name: it.Name, Price: price, Multiplier: mult}
	}
	return out
}
