package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
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
	defaultCartonBoxesTableName  = "carton_boxes"
	defaultPackingListsTableName = "packing_lists"
)

type cartonBoxRow struct {
	ID                  string   `dynamodbav:"id"`
	Barcode             string   `dynamodbav:"barcode"`
	InternalSKU         string   `dynamodbav:"internal_sku"`
	ValidationStatus    string   `dynamodbav:"validation_status,omitempty"`
	Status              string   `dynamodbav:"status,omitempty"`
	ProcessedAt         string   `dynamodbav:"processed_at,omitempty"`
	ProcessedBy         string   `dynamodbav:"processed_by,omitempty"`
	ItemsQuantity       int      `dynamodbav:"items_quantity"`
	PackingListID       string   `dynamodbav:"packing_list_id,omitempty"`
	PurchaseOrderNumber string   `dynamodbav:"purchase_order_number,omitempty"`
	ItemIDs             []string `dynamodbav:"item_ids,omitempty"`
	Version             int64    `dynamodbav:"version,omitempty"`
}

type packingListRow struct {
	ID                  string            `dynamodbav:"id"`
	PurchaseOrderNumber string            `dynamodbav:"purchase_order_number"`
	CartonBoxesQuantity int               `dynamodbav:"carton_boxes_quantity"`
	Rule                string            `dynamodbav:"carton_validation_rule,omitempty"`
	Details             string            `dynamodbav:"details,omitempty"`
	Buyer               map[string]string `dynamodbav:"buyer,omitempty"`
}

// CartonBoxDynamoRepository persists CartonBox aggregates in DynamoDB.
//
// Table requirements:
//   - carton_boxes: PK id (string); version attribute guards concurrent
//     saves; item_ids keeps the attached list on the aggregate row so the
//     count check and the append commit atomically.
//   - packing_lists: PK id (string); details holds the rule configuration
//     JSON; buyer is denormalized onto the row.
//
// Table names are tenant-prefixed from the request context.

type CartonBoxDynamoRepository struct {
	ddb               *dynamodb.Client
	cartonsTable      string
	packingListsTable string
	items             *ItemDynamoRepository
}

var _ interfaces.ICartonBoxRepository = (*CartonBoxDynamoRepository)(nil)

func NewCartonBoxDynamoRepository(ddb *dynamodb.Client, items *ItemDynamoRepository) *CartonBoxDynamoRepository {
	return &CartonBoxDynamoRepository{
		ddb:               ddb,
		cartonsTable:      getenvDefault("CARTON_BOXES_TABLE", defaultCartonBoxesTableName),
		packingListsTable: getenvDefault("PACKING_LISTS_TABLE", defaultPackingListsTableName),
		items:             items,
	}
}

func (r *CartonBoxDynamoRepository) GetByID(ctx context.Context, id string) (entities.CartonBox, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(tenancy.TableName(ctx, r.cartonsTable)),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CartonBox{}, err
	}
	if len(out.Item) == 0 {
		return entities.CartonBox{}, nil
	}

	var row cartonBoxRow
	if err := attributevalue.UnmarshalMap(out.Item, &row); err != nil {
		return entities.CartonBox{}, err
	}
	return r.hydrate(ctx, row)
}

// FindByFilters returns non-validated cartons matching the given barcode,
// purchase order and/or internal SKU. Purchase order numbers are
// denormalized onto the carton row to keep this a single-table scan.
func (r *CartonBoxDynamoRepository) FindByFilters(ctx context.Context, barcode, po, sku string) ([]entities.CartonBox, error) {
	filter := "(attribute_not_exists(#vs) OR #vs <> :validated)"
	names := map[string]string{"#vs": "validation_status"}
	values := map[string]types.AttributeValue{
		":validated": &types.AttributeValueMemberS{Value: string(entities.ValidationStatusValidated)},
	}

	if barcode != "" {
		filter += " AND #barcode = :barcode"
		names["#barcode"] = "barcode"
		values[":barcode"] = &types.AttributeValueMemberS{Value: barcode}
	}
	if po != "" {
		filter += " AND #po = :po"
		names["#po"] = "purchase_order_number"
		values[":po"] = &types.AttributeValueMemberS{Value: po}
	}
	if sku != "" {
		filter += " AND #sku = :sku"
		names["#sku"] = "internal_sku"
		values[":sku"] = &types.AttributeValueMemberS{Value: sku}
	}

	var cartons []entities.CartonBox
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(tenancy.TableName(ctx, r.cartonsTable)),
			FilterExpression:          aws.String(filter),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var row cartonBoxRow
			if err := attributevalue.UnmarshalMap(raw, &row); err != nil {
				return nil, err
			}
			carton, err := r.hydrate(ctx, row)
			if err != nil {
				return nil, err
			}
			cartons = append(cartons, carton)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return cartons, nil
}

// Save upserts the carton row conditionally on the version it was loaded
// with. A conflicting concurrent save surfaces as ErrCartonVersionConflict.
func (r *CartonBoxDynamoRepository) Save(ctx context.Context, c entities.CartonBox) (entities.CartonBox, error) {
	loadedVersion := c.Version
	c.Version = loadedVersion + 1

	av, err := attributevalue.MarshalMap(toCartonBoxRow(c))
	if err != nil {
		return entities.CartonBox{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(tenancy.TableName(ctx, r.cartonsTable)),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#version) OR #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(loadedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CartonBox{}, interfaces.ErrCartonVersionConflict
		}
		return entities.CartonBox{}, err
	}
	return c, nil
}

func (r *CartonBoxDynamoRepository) hydrate(ctx context.Context, row cartonBoxRow) (entities.CartonBox, error) {
	carton := fromCartonBoxRow(row)

	if row.PackingListID != "" {
		pl, err := r.getPackingList(ctx, row.PackingListID)
		if err != nil {
			return entities.CartonBox{}, err
		}
		carton.PackingList = pl
	}

	if len(row.ItemIDs) > 0 {
		items, err := r.items.GetByIDs(ctx, row.ItemIDs)
		if err != nil {
			return entities.CartonBox{}, err
		}
		carton.Items = items
	}
	return carton, nil
}

func (r *CartonBoxDynamoRepository) getPackingList(ctx context.Context, id string) (*entities.PackingList, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(tenancy.TableName(ctx, r.packingListsTable)),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var row packingListRow
	if err := attributevalue.UnmarshalMap(out.Item, &row); err != nil {
		return nil, err
	}

	pl := &entities.PackingList{
		ID:                  row.ID,
		PurchaseOrderNumber: row.PurchaseOrderNumber,
		CartonBoxesQuantity: row.CartonBoxesQuantity,
		Rule:                row.Rule,
	}
	if row.Details != "" {
		pl.Details = json.RawMessage(row.Details)
	}
	if len(row.Buyer) > 0 {
		pl.Buyer = &entities.Buyer{
			ID:    row.Buyer["id"],
			Name:  row.Buyer["name"],
			Email: row.Buyer["email"],
		}
	}
	return pl, nil
}

func toCartonBoxRow(c entities.CartonBox) cartonBoxRow {
	row := cartonBoxRow{
		ID:               c.ID,
		Barcode:          c.Barcode,
		InternalSKU:      c.InternalSKU,
		ValidationStatus: string(c.ValidationStatus),
		Status:           string(c.Status),
		ProcessedBy:      c.ProcessedBy,
		ItemsQuantity:    c.ItemsQuantity,
		Version:          c.Version,
	}
	if c.ProcessedAt != nil {
		row.ProcessedAt = c.ProcessedAt.UTC().Format(time.RFC3339Nano)
	}
	if c.PackingList != nil {
		row.PackingListID = c.PackingList.ID
		row.PurchaseOrderNumber = c.PackingList.PurchaseOrderNumber
	}
	for _, item := range c.Items {
		row.ItemIDs = append(row.ItemIDs, item.ID)
	}
	return row
}

func fromCartonBoxRow(row cartonBoxRow) entities.CartonBox {
	carton := entities.CartonBox{
		ID:               row.ID,
		Barcode:          row.Barcode,
		InternalSKU:      row.InternalSKU,
		ValidationStatus: entities.ValidationStatus(row.ValidationStatus),
		Status:           entities.CartonStatus(row.Status),
		ProcessedBy:      row.ProcessedBy,
		ItemsQuantity:    row.ItemsQuantity,
		Version:          row.Version,
	}
	if carton.ValidationStatus == "" {
		carton.ValidationStatus = entities.ValidationStatusPending
	}
	if carton.Status == "" {
		carton.Status = entities.CartonStatusOpen
	}
	if row.ProcessedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, row.ProcessedAt); err == nil {
			carton.ProcessedAt = &t
		}
	}
	return carton
}
