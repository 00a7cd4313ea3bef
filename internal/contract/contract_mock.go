package contract

import (
	"context"

	"github.com/huangsam/foodprint/schema"
	"github.com/stretchr/testify/mock"
)

// MockProductSource is a mock implementation of ProductSource for testing.
type MockProductSource struct {
	mock.Mock
}

// Load mocks the Load method.
func (m *MockProductSource) Load(ctx context.Context) ([]schema.Product, []schema.Notice, error) {
	args := m.Called(ctx)
	var products []schema.Product
	if v := args.Get(0); v != nil {
		products = v.([]schema.Product)
	}
	var notices []schema.Notice
	if v := args.Get(1); v != nil {
		notices = v.([]schema.Notice)
	}
	return products, notices, args.Error(2)
}

// Describe mocks the Describe method.
func (m *MockProductSource) Describe() string {
	args := m.Called()
	return args.String(0)
}

// MockOutputWriter is a mock implementation of OutputWriter for testing.
type MockOutputWriter struct {
	mock.Mock
}

// WriteRanking mocks the WriteRanking method.
func (m *MockOutputWriter) WriteRanking(report schema.RankingReport, cfg *Config) error {
	return m.Called(report, cfg).Error(0)
}

// WriteWorkbook mocks the WriteWorkbook method.
func (m *MockOutputWriter) WriteWorkbook(results []schema.ProductResult, cfg *Config) error {
	return m.Called(results, cfg).Error(0)
}

// WriteDetail mocks the WriteDetail method.
func (m *MockOutputWriter) WriteDetail(detail schema.ProductDetail, cfg *Config) error {
	return m.Called(detail, cfg).Error(0)
}

// WriteEvaluation mocks the WriteEvaluation method.
func (m *MockOutputWriter) WriteEvaluation(eval schema.Evaluation, cfg *Config) error {
	return m.Called(eval, cfg).Error(0)
}

// WriteComparison mocks the WriteComparison method.
func (m *MockOutputWriter) WriteComparison(result schema.ComparisonResult, cfg *Config) error {
	return m.Called(result, cfg).Error(0)
}

// WriteCategories mocks the WriteCategories method.
func (m *MockOutputWriter) WriteCategories(groups []schema.CategoryGroup, cfg *Config) error {
	return m.Called(groups, cfg).Error(0)
}

// WriteRobust mocks the WriteRobust method.
func (m *MockOutputWriter) WriteRobust(result schema.RobustResult, cfg *Config) error {
	return m.Called(result, cfg).Error(0)
}

// WriteVerification mocks the WriteVerification method.
func (m *MockOutputWriter) WriteVerification(result schema.VerificationResult, cfg *Config) error {
	return m.Called(result, cfg).Error(0)
}

// WriteMethodology mocks the WriteMethodology method.
func (m *MockOutputWriter) WriteMethodology(methodology schema.Methodology, cfg *Config) error {
	return m.Called(methodology, cfg).Error(0)
}

// Ensure mocks implement the interfaces.
var (
	_ ProductSource = &MockProductSource{}
	_ OutputWriter  = &MockOutputWriter{}
)
