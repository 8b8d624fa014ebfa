//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"laman-client/internal/domain/catalog"
	"laman-client/internal/pkg/clock"
	"laman-client/internal/pkg/config"
	"laman-client/internal/pkg/errs"
	"laman-client/internal/usecase"
	"laman-client/internal/usecase/shared"
	"laman-client/tests/common/builder"
	gatewaymock "laman-client/tests/mock/gateway"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogEngineTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	gateway *gatewaymock.MockCatalogGateway
	clk     *clock.MockClock
	index   *shared.ProductIndex
	engine  *usecase.CatalogEngine
}

func (s *CatalogEngineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gateway = gatewaymock.NewMockCatalogGateway(s.ctrl)
	s.clk = clock.NewMockClock(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))
	s.index = shared.NewProductIndex()
	s.engine = usecase.NewCatalogEngine(s.gateway, s.index, s.clk, config.NewTestConfig(), discardLogger())
}

func (s *CatalogEngineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCatalogEngineSuite(t *testing.T) {
	suite.Run(t, new(CatalogEngineTestSuite))
}

func (s *CatalogEngineTestSuite) TestLoadInitial() {
	categories := []catalog.Category{{ID: uuid.New(), Name: "Groceries"}}
	products := []catalog.Product{builder.NewProductBuilder().WithName("Milk").Build()}

	s.gateway.EXPECT().ListCategories(gomock.Any()).Return(categories, nil)
	s.gateway.EXPECT().ListProducts(gomock.Any(), usecase.ProductQuery{}).Return(products, nil)

	s.engine.LoadInitial(context.Background())

	snap := s.engine.Snapshot()
	s.Equal(categories, snap.Categories)
	s.Equal(products, snap.Products)
	s.False(snap.Loading)
	s.NoError(snap.LastError)

	got, ok := s.index.Lookup(products[0].ID)
	s.True(ok)
	s.Equal("Milk", got.Name)
}

func (s *CatalogEngineTestSuite) TestLoadInitialPartialFailure() {
	products := []catalog.Product{builder.NewProductBuilder().Build()}

	s.gateway.EXPECT().ListCategories(gomock.Any()).Return(nil, errs.ErrNetwork)
	s.gateway.EXPECT().ListProducts(gomock.Any(), usecase.ProductQuery{}).Return(products, nil)

	s.engine.LoadInitial(context.Background())

	snap := s.engine.Snapshot()
	s.Error(snap.LastError)
	s.False(snap.Loading)
	s.Empty(snap.Categories, "failed fetch must leave the prior list intact")
	s.Equal(products, snap.Products, "successful sibling fetch still publishes")
}

func (s *CatalogEngineTestSuite) TestSelectCategoryCascade() {
	categoryID := uuid.New()
	subcategories := []catalog.Subcategory{{ID: uuid.New(), CategoryID: categoryID, Name: "Dairy"}}
	products := []catalog.Product{builder.NewProductBuilder().Build()}

	s.gateway.EXPECT().ListSubcategories(gomock.Any(), categoryID).Return(subcategories, nil)
	s.gateway.EXPECT().
		ListProducts(gomock.Any(), usecase.ProductQuery{CategoryID: &categoryID}).
		Return(products, nil)

	s.engine.SelectCategory(context.Background(), &categoryID)

	snap := s.engine.Snapshot()
	s.Equal(&categoryID, snap.SelectedCategoryID)
	s.Nil(snap.SelectedSubcategoryID)
	s.Equal(subcategories, snap.Subcategories)
	s.Equal(products, snap.Products)
}

func (s *CatalogEngineTestSuite) TestSelectCategoryNilResetsFilters() {
	s.gateway.EXPECT().ListProducts(gomock.Any(), usecase.ProductQuery{}).Return(nil, nil)

	s.engine.SelectCategory(context.Background(), nil)

	snap := s.engine.Snapshot()
	s.Nil(snap.SelectedCategoryID)
	s.Empty(snap.Subcategories)
}

func (s *CatalogEngineTestSuite) TestSubcategoryFetchFailureDegradesToEmpty() {
	categoryID := uuid.New()

	s.gateway.EXPECT().ListSubcategories(gomock.Any(), categoryID).Return(nil, errs.ErrNetwork)
	s.gateway.EXPECT().
		ListProducts(gomock.Any(), usecase.ProductQuery{CategoryID: &categoryID}).
		Return(nil, nil)

	s.engine.SelectCategory(context.Background(), &categoryID)

	snap := s.engine.Snapshot()
	s.Equal(&categoryID, snap.SelectedCategoryID, "selection is never rolled back")
	s.Empty(snap.Subcategories)
}

func (s *CatalogEngineTestSuite) TestDebounceBurstIssuesOneQuery() {
	s.gateway.EXPECT().
		ListProducts(gomock.Any(), usecase.ProductQuery{Search: "milk"}).
		Return(nil, nil).
		Times(1)

	s.engine.SearchTextChanged("m")
	s.clk.Add(100 * time.Millisecond)
	s.engine.SearchTextChanged("mi")
	s.clk.Add(100 * time.Millisecond)
	s.engine.SearchTextChanged("milk")

	s.Equal("milk", s.engine.Snapshot().SearchText, "text publishes before the query fires")

	s.clk.Add(300 * time.Millisecond)
}

func (s *CatalogEngineTestSuite) TestSpacedKeystrokesQueryEachTime() {
	s.gateway.EXPECT().ListProducts(gomock.Any(), usecase.ProductQuery{Search: "tea"}).Return(nil, nil)
	s.gateway.EXPECT().ListProducts(gomock.Any(), usecase.ProductQuery{Search: "teapot"}).Return(nil, nil)

	s.engine.SearchTextChanged("tea")
	s.clk.Add(300 * time.Millisecond)
	s.engine.SearchTextChanged("teapot")
	s.clk.Add(300 * time.Millisecond)
}

func (s *CatalogEngineTestSuite) TestSearchIgnoresCategoryFilters() {
	categoryID := uuid.New()
	subcategoryID := uuid.New()
	subcategories := []catalog.Subcategory{{ID: subcategoryID, CategoryID: categoryID, Name: "Dairy"}}

	s.gateway.EXPECT().ListSubcategories(gomock.Any(), categoryID).Return(subcategories, nil)
	s.gateway.EXPECT().
		ListProducts(gomock.Any(), usecase.ProductQuery{CategoryID: &categoryID}).
		Return(nil, nil)
	s.engine.SelectCategory(context.Background(), &categoryID)

	s.gateway.EXPECT().
		ListProducts(gomock.Any(), usecase.ProductQuery{CategoryID: &categoryID, SubcategoryID: &subcategoryID}).
		Return(nil, nil)
	s.engine.SelectSubcategory(context.Background(), &subcategoryID)

	// Non-empty search drops both selections from the query.
	s.gateway.EXPECT().
		ListProducts(gomock.Any(), usecase.ProductQuery{Search: "milk"}).
		Return(nil, nil)
	s.engine.SearchTextChanged("milk")
	s.clk.Add(300 * time.Millisecond)

	snap := s.engine.Snapshot()
	s.Equal(&categoryID, snap.SelectedCategoryID, "selections survive a global search")
	s.Equal(&subcategoryID, snap.SelectedSubcategoryID)
}

func (s *CatalogEngineTestSuite) TestWhitespaceSearchKeepsFilters() {
	categoryID := uuid.New()

	s.gateway.EXPECT().ListSubcategories(gomock.Any(), categoryID).Return(nil, nil)
	s.gateway.EXPECT().
		ListProducts(gomock.Any(), usecase.ProductQuery{CategoryID: &categoryID}).
		Return(nil, nil).
		Times(2)

	s.engine.SelectCategory(context.Background(), &categoryID)

	s.engine.SearchTextChanged("   ")
	s.clk.Add(300 * time.Millisecond)
}

func (s *CatalogEngineTestSuite) TestSelectionCancelsPendingSearch() {
	s.engine.SearchTextChanged("mil")

	// The selection queries once (still carrying the live search text) and
	// cancels the pending keystroke timer, so advancing past the quiet
	// period issues nothing further.
	s.gateway.EXPECT().
		ListProducts(gomock.Any(), usecase.ProductQuery{Search: "mil"}).
		Return(nil, nil).
		Times(1)

	s.engine.SelectCategory(context.Background(), nil)
	s.clk.Add(300 * time.Millisecond)
}

func (s *CatalogEngineTestSuite) TestNewerSelectionOwnsSubcategoryList() {
	oldID := uuid.New()
	newID := uuid.New()
	oldSubcategories := []catalog.Subcategory{{ID: uuid.New(), CategoryID: oldID, Name: "Stale"}}
	newSubcategories := []catalog.Subcategory{{ID: uuid.New(), CategoryID: newID, Name: "Dairy"}}

	// The second selection lands while the first one's subcategory fetch is
	// still in flight; the late result must not overwrite the newer list, and
	// the superseded selection must not query products at all.
	s.gateway.EXPECT().
		ListSubcategories(gomock.Any(), oldID).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID) ([]catalog.Subcategory, error) {
			s.engine.SelectCategory(ctx, &newID)
			return oldSubcategories, nil
		})
	s.gateway.EXPECT().ListSubcategories(gomock.Any(), newID).Return(newSubcategories, nil)
	s.gateway.EXPECT().
		ListProducts(gomock.Any(), usecase.ProductQuery{CategoryID: &newID}).
		Return(nil, nil).
		Times(1)

	s.engine.SelectCategory(context.Background(), &oldID)

	snap := s.engine.Snapshot()
	s.Equal(&newID, snap.SelectedCategoryID)
	s.Equal(newSubcategories, snap.Subcategories)
}

func (s *CatalogEngineTestSuite) TestQueryFailureKeepsPriorProducts() {
	products := []catalog.Product{builder.NewProductBuilder().Build()}

	s.gateway.EXPECT().ListCategories(gomock.Any()).Return(nil, nil)
	s.gateway.EXPECT().ListProducts(gomock.Any(), usecase.ProductQuery{}).Return(products, nil)
	s.engine.LoadInitial(context.Background())

	s.gateway.EXPECT().
		ListProducts(gomock.Any(), usecase.ProductQuery{Search: "x"}).
		Return(nil, errs.ErrNetwork)
	s.engine.SearchTextChanged("x")
	s.clk.Add(300 * time.Millisecond)

	snap := s.engine.Snapshot()
	s.Error(snap.LastError)
	s.Equal(products, snap.Products, "failed query leaves the published list intact")

	s.engine.DismissError()
	s.NoError(s.engine.Snapshot().LastError)
}
