package repository

import (
	"context"
	"time"

	"accuracy_wms/internal/domain/entities"
	"accuracy_wms/internal/infrastructure/tenancy"
	"accuracy_wms/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultItemsTableName       = "items"
	defaultCartonItemsTableName = "carton_box_items"
	itemsBarcodeIndex           = "barcode-index"
)

type itemRow struct {
	ID          string            `dynamodbav:"id"`
	Barcode     string            `dynamodbav:"barcode"`
	InternalSKU string            `dynamodbav:"internal_sku"`
	Name        string            `dynamodbav:"name"`
	Details     map[string]string `dynamodbav:"details,omitempty"`
	HasPolybag  bool              `dynamodbav:"has_polybag"`
}

type cartonItemLinkRow struct {
	CartonBoxID string `dynamodbav:"carton_box_id"`
	ItemID      string `dynamodbav:"item_id"`
	IsValidated bool   `dynamodbav:"is_validated"`
	ValidatedAt string `dynamodbav:"validated_at"`
	ValidatedBy string `dynamodbav:"validated_by"`
}

// ItemDynamoRepository persists catalogued items and their per-carton
// validation links in DynamoDB.
//
// Table requirements:
//   - items: PK id (string); GSI barcode-index (PK: barcode)
//   - carton_box_items: PK carton_box_id (string), SK item_id (string)
//
// The link write is a plain PutItem keyed on (carton, item), which makes it
// an idempotent upsert.

type ItemDynamoRepository struct {
	ddb             *dynamodb.Client
	itemsTable      string
	cartonItemTable string
}

var _ interfaces.IItemRepository = (*ItemDynamoRepository)(nil)

func NewItemDynamoRepository(ddb *dynamodb.Client) *ItemDynamoRepository {
	return &ItemDynamoRepository{
		ddb:             ddb,
		itemsTable:      getenvDefault("ITEMS_TABLE", defaultItemsTableName),
		cartonItemTable: getenvDefault("CARTON_ITEMS_TABLE", defaultCartonItemsTableName),
	}
}

func (r *ItemDynamoRepository) FindByLPN(ctx context.Context, lpn string) ([]entities.Item, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(tenancy.TableName(ctx, r.itemsTable)),
		IndexName:              aws.String(itemsBarcodeIndex),
		KeyConditionExpression: aws.String("barcode = :barcode"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":barcode": &types.AttributeValueMemberS{Value: lpn},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Item, 0, len(out.Items))
	for _, raw := range out.Items {
		var row itemRow
		if err := attributevalue.UnmarshalMap(raw, &row); err != nil {
			return nil, err
		}
		items = append(items, fromItemRow(row))
	}
	return items, nil
}

// GetByIDs loads items by id, preserving the input order. Carton hydration
// relies on the order to keep the attached list append-only.
func (r *ItemDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.Item, error) {
	table := tenancy.TableName(ctx, r.itemsTable)

	byID := make(map[string]entities.Item, len(ids))
	unique := make([]map[string]types.AttributeValue, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		})
	}

	// BatchGetItem caps at 100 keys per request.
	for start := 0; start < len(unique); start += 100 {
		end := min(start+100, len(unique))
		keys := unique[start:end]
		for len(keys) > 0 {
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: map[string]types.KeysAndAttributes{
					table: {Keys: keys},
				},
			})
			if err != nil {
				return nil, err
			}
			for _, raw := range out.Responses[table] {
				var row itemRow
				if err := attributevalue.UnmarshalMap(raw, &row); err != nil {
					return nil, err
				}
				byID[row.ID] = fromItemRow(row)
			}
			keys = out.UnprocessedKeys[table].Keys
		}
	}

	items := make([]entities.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *ItemDynamoRepository) SaveValidationLink(ctx context.Context, item entities.Item, cartonBoxID, validatedBy string, validatedAt time.Time) error {
	av, err := attributevalue.MarshalMap(cartonItemLinkRow{
		CartonBoxID: cartonBoxID,
		ItemID:      item.ID,
		IsValidated: true,
		ValidatedAt: validatedAt.UTC().Format(time.RFC3339Nano),
		ValidatedBy: validatedBy,
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(tenancy.TableName(ctx, r.cartonItemTable)),
		Item:      av,
	})
	return err
}

func fromItemRow(row itemRow) entities.Item {
	return entities.Item{
		ID:          row.ID,
		Barcode:     row.Barcode,
		InternalSKU: row.InternalSKU,
		Name:        row.Name,
		Details:     row.Details,
		HasPolybag:  row.HasPolybag,
	}
}
