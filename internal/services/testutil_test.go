package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yungbote/crm-backend/internal/logger"
	"github.com/yungbote/crm-backend/internal/repos"
	"github.com/yungbote/crm-backend/internal/types"
)

// newTestDB opens a private in-memory SQLite database. A single connection
// keeps every statement on the same in-memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gormDB.AutoMigrate(&types.Customer{}, &types.Product{}, &types.Order{}))
	return gormDB
}

type testEnv struct {
	db        *gorm.DB
	customers CustomerService
	products  ProductService
	orders    OrderService
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	gormDB := newTestDB(t)
	log := logger.NewNop()
	customerRepo := repos.NewCustomerRepo(gormDB, log)
	productRepo := repos.NewProductRepo(gormDB, log)
	orderRepo := repos.NewOrderRepo(gormDB, log)
	return testEnv{
		db:        gormDB,
		customers: NewCustomerService(gormDB, log, customerRepo),
		products:  NewProductService(gormDB, log, productRepo),
		orders:    NewOrderService(gormDB, log, customerRepo, productRepo, orderRepo),
	}
}

func countRows(t *testing.T, gormDB *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, gormDB.Model(model).Count(&count).Error)
	return count
}
