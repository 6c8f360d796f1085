package integrity

import (
	"context"
	"testing"

	"interface-reconciler/core/config"
	"interface-reconciler/core/database"
	"interface-reconciler/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func catalogConfig() config.CatalogConfig {
	return config.CatalogConfig{
		Source:        config.SourceCSV,
		Object:        "catalog/interfaces.csv",
		MappingObject: "mappings/columns.csv",
		Table:         "interface_catalog",
		MappingTable:  "column_mappings",
		OrderBy:       "id",
	}
}

func sqliteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestService_Structure(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", zap.NewNop(), nil, catalogConfig())

	t.Run("CheckStructure", func(t *testing.T) {
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Objects())

		missing, err := svc.CheckStructure(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"catalog", "mappings", "reports"}, missing)
	})

	t.Run("FixStructure", func(t *testing.T) {
		mockClient.On("PutObject", mock.Anything, "test-bucket", "reports/", mock.Anything, int64(0), mock.Anything).
			Return(minio.UploadInfo{}, nil)
		err := svc.FixStructure(context.Background(), []string{"reports"})
		assert.NoError(t, err)
	})
}

func TestService_CatalogObjects(t *testing.T) {
	cfg := catalogConfig()
	svc := NewService(nil, "b", zap.NewNop(), nil, cfg)
	assert.Equal(t, []string{"catalog/interfaces.csv", "mappings/columns.csv"}, svc.CatalogObjects())

	cfg.File = "/data/catalog.csv"
	svc = NewService(nil, "b", zap.NewNop(), nil, cfg)
	assert.Equal(t, []string{"mappings/columns.csv"}, svc.CatalogObjects())

	cfg.Source = config.SourceDatabase
	svc = NewService(nil, "b", zap.NewNop(), nil, cfg)
	assert.Empty(t, svc.CatalogObjects())
}

func TestService_CheckCatalogObjects(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("StatObject", mock.Anything, "test-bucket", "catalog/interfaces.csv", mock.Anything).
		Return(minio.ObjectInfo{}, nil)
	mockClient.On("StatObject", mock.Anything, "test-bucket", "mappings/columns.csv", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})
	svc := NewService(mockClient, "test-bucket", zap.NewNop(), nil, catalogConfig())

	missing, err := svc.CheckCatalogObjects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"mappings/columns.csv"}, missing)
}

func TestService_Schema(t *testing.T) {
	svc := NewService(nil, "b", zap.NewNop(), sqliteDB(t), catalogConfig())

	report, err := svc.CheckSchema()
	require.NoError(t, err)
	assert.False(t, report.Matched)

	require.NoError(t, svc.FixSchema())

	report, err = svc.CheckSchema()
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Len(t, report.Tables, 2)
}

func TestService_Schema_NoDatabase(t *testing.T) {
	svc := NewService(nil, "b", zap.NewNop(), nil, catalogConfig())

	_, err := svc.CheckSchema()
	assert.Error(t, err)
	assert.Error(t, svc.FixSchema())
}
