package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGetTableColumns_SQLite(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE tb_order (id INTEGER PRIMARY KEY, order_no VARCHAR(50) NOT NULL, amount NUMERIC(10,2), note TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "", "tb_order")
	require.NoError(t, err)
	require.Len(t, columns, 4)

	assert.Equal(t, ColumnInfo{Name: "ID", DataType: "INTEGER", Size: "", Nullable: "N"}, columns[0])
	assert.Equal(t, ColumnInfo{Name: "ORDER_NO", DataType: "VARCHAR", Size: "50", Nullable: "N"}, columns[1])
	assert.Equal(t, ColumnInfo{Name: "AMOUNT", DataType: "NUMERIC", Size: "10", Nullable: "Y"}, columns[2])
	assert.Equal(t, ColumnInfo{Name: "NOTE", DataType: "TEXT", Size: "", Nullable: "Y"}, columns[3])

	// PRAGMA table_info returns no rows for a missing table
	_, err = GetTableColumns(db, "", "non_existent")
	assert.True(t, errors.Is(err, ErrTableNotFound))
}

func infoRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"column_name", "data_type", "character_maximum_length", "numeric_precision", "is_nullable"}).
		AddRow("order_no", "varchar", 50, nil, "NO").
		AddRow("qty", "decimal", nil, 10, "YES").
		AddRow("created_at", "datetime", nil, nil, "YES")
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(`FROM information_schema.columns WHERE LOWER\(table_schema\) = LOWER\(\?\) AND LOWER\(table_name\) = LOWER\(\?\)`).
		WithArgs("LYOWN", "TB_ORDER").
		WillReturnRows(infoRows())

	columns, err := GetTableColumns(db, "LYOWN", "TB_ORDER")
	require.NoError(t, err)
	require.Len(t, columns, 3)
	assert.Equal(t, ColumnInfo{Name: "ORDER_NO", DataType: "VARCHAR", Size: "50", Nullable: "N"}, columns[0])
	assert.Equal(t, ColumnInfo{Name: "QTY", DataType: "DECIMAL", Size: "10", Nullable: "Y"}, columns[1])
	assert.Equal(t, ColumnInfo{Name: "CREATED_AT", DataType: "DATETIME", Size: "", Nullable: "Y"}, columns[2])

	mock.ExpectQuery(`LOWER\(table_schema\) = DATABASE\(\)`).
		WithArgs("TB_GONE").
		WillReturnRows(sqlmock.NewRows([]string{"column_name", "data_type", "character_maximum_length", "numeric_precision", "is_nullable"}))

	_, err = GetTableColumns(db, "", "TB_GONE")
	assert.True(t, errors.Is(err, ErrTableNotFound))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTableColumns_Postgres(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(`LOWER\(table_schema\) = current_schema\(\) AND LOWER\(table_name\) = LOWER\(\$1\)`).
		WithArgs("tb_order").
		WillReturnRows(infoRows())

	columns, err := GetTableColumns(db, "", "tb_order")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	mock.ExpectQuery(`information_schema.columns`).
		WithArgs("lhown", "tb_order").
		WillReturnError(errors.New("connection reset"))

	_, err = GetTableColumns(db, "lhown", "tb_order")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrTableNotFound))
	assert.ErrorContains(t, err, "lhown.tb_order")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSplitType(t *testing.T) {
	tests := []struct {
		raw, name, size string
	}{
		{"varchar(50)", "VARCHAR", "50"},
		{"NUMERIC(10, 2)", "NUMERIC", "10"},
		{"TEXT", "TEXT", ""},
		{" char (8) ", "CHAR", "8"},
	}
	for _, tt := range tests {
		name, size := SplitType(tt.raw)
		assert.Equal(t, tt.name, name, tt.raw)
		assert.Equal(t, tt.size, size, tt.raw)
	}
}
