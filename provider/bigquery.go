// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package provider readies warehouse destinations for feature ingestion.
package provider

import (
	"context"
	"encoding/json"
	"net/http"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/featsink/featsink/fserr"
	"github.com/featsink/featsink/logging"
	pc "github.com/featsink/featsink/provider/provider_config"
	"github.com/featsink/featsink/specs"
)

const ProviderType = "BIGQUERY"

// Reserved bookkeeping columns appended to every destination table, after the
// feature columns. Order and descriptions are part of the destination contract
// and must not change between ingestion runs.
const (
	idColumn               = "id"
	eventTimestampColumn   = "event_timestamp"
	createdTimestampColumn = "created_timestamp"
	jobIdColumn            = "job_id"
)

var reservedColumns = bigquery.Schema{
	{Name: idColumn, Type: bigquery.StringFieldType, Description: "Entity ID for the row"},
	{Name: eventTimestampColumn, Type: bigquery.TimestampFieldType, Description: "Event time for the row"},
	{Name: createdTimestampColumn, Type: bigquery.TimestampFieldType, Description: "Time the row was created"},
	{Name: jobIdColumn, Type: bigquery.StringFieldType, Description: "Import job ID for the row"},
}

// WarehouseClient is the slice of the warehouse API the provisioner needs.
// It is satisfied by BQClient and by test fakes; the provisioner neither
// opens nor closes it.
type WarehouseClient interface {
	ProjectID() string
	GetDataset(ctx context.Context, projectID, datasetID string) (bool, error)
	CreateDataset(ctx context.Context, projectID, datasetID string) error
	GetTable(ctx context.Context, projectID, datasetID, tableID string) (bool, error)
	CreateTable(ctx context.Context, projectID, datasetID, tableID string, metadata *bigquery.TableMetadata) error
	UpdateTable(ctx context.Context, projectID, datasetID, tableID string, metadata *bigquery.TableMetadata) error
}

// EnsureDestination makes sure the destination dataset and table for the
// entity exist and that the table matches the schema derived from the feature
// specs. The dataset is created only if absent; an existing table is always
// reconciled via update. Warehouse errors propagate to the caller unchanged,
// so retry policy stays with the caller.
func EnsureDestination(ctx context.Context, storage specs.StorageSpec, entity specs.EntitySpec, features []specs.FeatureSpec, client WarehouseClient, logger logging.Logger) error {
	config, err := pc.BigQueryConfigFromOptions(storage.Options)
	if err != nil {
		return err
	}
	if err := specs.ValidateFeatures(entity, features); err != nil {
		return err
	}

	projectID := config.ProjectId
	if projectID == "" {
		projectID = client.ProjectID()
	}
	logger = logger.
		WithProvider(ProviderType, "warehouse-destination").
		WithEntity(entity.Name).
		WithDestination(projectID, config.DatasetId, entity.Name)

	datasetFound, err := client.GetDataset(ctx, projectID, config.DatasetId)
	if err != nil {
		return err
	}
	if !datasetFound {
		logger.Info("Dataset not found, creating")
		if err := client.CreateDataset(ctx, projectID, config.DatasetId); err != nil {
			return err
		}
	}

	schema, err := DeriveSchema(features)
	if err != nil {
		return err
	}
	metadata := &bigquery.TableMetadata{
		Schema: schema,
		TimePartitioning: &bigquery.TimePartitioning{
			Type:  bigquery.DayPartitioningType,
			Field: eventTimestampColumn,
		},
	}

	tableFound, err := client.GetTable(ctx, projectID, config.DatasetId, entity.Name)
	if err != nil {
		return err
	}
	if !tableFound {
		logger.Info("Table not found, creating")
		return client.CreateTable(ctx, projectID, config.DatasetId, entity.Name, metadata)
	}
	logger.Info("Table found, updating schema")
	return client.UpdateTable(ctx, projectID, config.DatasetId, entity.Name, metadata)
}

// DeriveSchema maps the feature specs onto warehouse columns, one per feature
// in input order, then appends the reserved columns.
func DeriveSchema(features []specs.FeatureSpec) (bigquery.Schema, error) {
	schema := make(bigquery.Schema, 0, len(features)+len(reservedColumns))
	for _, feature := range features {
		columnType, err := bigQueryColumnType(feature.ValueType)
		if err != nil {
			return nil, err
		}
		schema = append(schema, &bigquery.FieldSchema{
			Name:        feature.Name,
			Type:        columnType,
			Description: feature.Description,
		})
	}
	schema = append(schema, reservedColumns...)
	return schema, nil
}

func bigQueryColumnType(valueType specs.ValueType) (bigquery.FieldType, error) {
	switch valueType {
	case specs.Bytes:
		return bigquery.BytesFieldType, nil
	case specs.String:
		return bigquery.StringFieldType, nil
	case specs.Int32, specs.Int64:
		return bigquery.IntegerFieldType, nil
	case specs.Float, specs.Double:
		return bigquery.FloatFieldType, nil
	case specs.Bool:
		return bigquery.BooleanFieldType, nil
	case specs.Timestamp:
		return bigquery.TimestampFieldType, nil
	default:
		return "", fserr.NewDataTypeNotFoundError(valueType.String(), nil)
	}
}

// BQClient implements WarehouseClient against a live BigQuery project.
type BQClient struct {
	client *bigquery.Client
}

func NewBQClient(ctx context.Context, config pc.BigQueryConfig) (*BQClient, error) {
	var opts []option.ClientOption
	if len(config.Credentials) > 0 {
		creds, err := json.Marshal(config.Credentials)
		if err != nil {
			return nil, fserr.NewInternalError(err)
		}
		opts = append(opts, option.WithCredentialsJSON(creds))
	}
	projectID := config.ProjectId
	if projectID == "" {
		projectID = bigquery.DetectProjectID
	}
	client, err := bigquery.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fserr.NewExecutionError(ProviderType, err)
	}
	return &BQClient{client: client}, nil
}

func (bq *BQClient) ProjectID() string {
	return bq.client.Project()
}

func (bq *BQClient) GetDataset(ctx context.Context, projectID, datasetID string) (bool, error) {
	_, err := bq.client.DatasetInProject(projectID, datasetID).Metadata(ctx)
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, err
}

func (bq *BQClient) CreateDataset(ctx context.Context, projectID, datasetID string) error {
	return bq.client.DatasetInProject(projectID, datasetID).Create(ctx, &bigquery.DatasetMetadata{})
}

func (bq *BQClient) GetTable(ctx context.Context, projectID, datasetID, tableID string) (bool, error) {
	_, err := bq.client.DatasetInProject(projectID, datasetID).Table(tableID).Metadata(ctx)
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, err
}

func (bq *BQClient) CreateTable(ctx context.Context, projectID, datasetID, tableID string, metadata *bigquery.TableMetadata) error {
	return bq.client.DatasetInProject(projectID, datasetID).Table(tableID).Create(ctx, metadata)
}

func (bq *BQClient) UpdateTable(ctx context.Context, projectID, datasetID, tableID string, metadata *bigquery.TableMetadata) error {
	// BigQuery does not allow changing partitioning on an existing table, so
	// only the schema is reconciled on update.
	update := bigquery.TableMetadataToUpdate{
		Schema: metadata.Schema,
	}
	_, err := bq.client.DatasetInProject(projectID, datasetID).Table(tableID).Update(ctx, update, "")
	return err
}

func (bq *BQClient) Close() error {
	return bq.client.Close()
}

func isNotFound(err error) bool {
	apiErr, ok := err.(*googleapi.Error)
	return ok && apiErr.Code == http.StatusNotFound
}
