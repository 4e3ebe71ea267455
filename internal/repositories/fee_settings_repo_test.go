package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type FeeSettingsRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    FeeSettingsRepository
	ownerID uuid.UUID
	context context.Context
}

func (suite *FeeSettingsRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewFeeSettingsRepo(mock)
	suite.ownerID = uuid.New()
	suite.context = context.Background()
}

func (suite *FeeSettingsRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestFeeSettingsRepoTestSuite(t *testing.T) {
	suite.Run(t, new(FeeSettingsRepoTestSuite))
}

func (suite *FeeSettingsRepoTestSuite) settings(isDefault bool) *models.FeeSettings {
	return &models.FeeSettings{
		ID:             uuid.New(),
		OwnerID:        suite.ownerID,
		Name:           "Shopee padrão",
		CommissionRate: decimal.RequireFromString("0.14"),
		PerItemFee:     decimal.RequireFromString("4"),
		TaxRate:        decimal.RequireFromString("0.06"),
		IsDefault:      isDefault,
	}
}

var clearDefaultsSQL = regexp.QuoteMeta(`UPDATE fee_settings SET is_default = FALSE`)

func (suite *FeeSettingsRepoTestSuite) TestCreate_DefaultClearsOthersFirst() {
	s := suite.settings(true)
	now := time.Now()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(clearDefaultsSQL).
		WithArgs(suite.ownerID, s.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO fee_settings`)).
		WithArgs(s.ID, s.OwnerID, s.Name, s.CommissionRate, s.AffiliateRate, s.PerItemFee, s.TaxRate, s.PreTaxDiscountRate, s.EntryInvoicePercent, s.AdvancePaymentEnabled, s.AdvancePaymentRate, s.AdSpend, s.IsDefault).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	suite.mock.ExpectCommit()

	assert.NoError(suite.T(), suite.repo.Create(suite.context, s))
	assert.Equal(suite.T(), now, s.CreatedAt)
}

func (suite *FeeSettingsRepoTestSuite) TestCreate_NotDefault() {
	s := suite.settings(false)
	now := time.Now()

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO fee_settings`)).
		WithArgs(s.ID, s.OwnerID, s.Name, s.CommissionRate, s.AffiliateRate, s.PerItemFee, s.TaxRate, s.PreTaxDiscountRate, s.EntryInvoicePercent, s.AdvancePaymentEnabled, s.AdvancePaymentRate, s.AdSpend, s.IsDefault).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	suite.mock.ExpectCommit()

	assert.NoError(suite.T(), suite.repo.Create(suite.context, s))
}

func (suite *FeeSettingsRepoTestSuite) TestSetDefault() {
	id := uuid.New()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(clearDefaultsSQL).
		WithArgs(suite.ownerID, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE fee_settings SET is_default = TRUE`)).
		WithArgs(suite.ownerID, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectCommit()

	assert.NoError(suite.T(), suite.repo.SetDefault(suite.context, suite.ownerID, id))
}

func (suite *FeeSettingsRepoTestSuite) TestSetDefault_UnknownIDRollsBack() {
	id := uuid.New()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(clearDefaultsSQL).
		WithArgs(suite.ownerID, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE fee_settings SET is_default = TRUE`)).
		WithArgs(suite.ownerID, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	suite.mock.ExpectRollback()

	err := suite.repo.SetDefault(suite.context, suite.ownerID, id)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *FeeSettingsRepoTestSuite) TestGetDefault_NoneSet() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`FROM fee_settings WHERE owner_id = $1 AND is_default LIMIT 1`)).
		WithArgs(suite.ownerID).
		WillReturnError(pgx.ErrNoRows)

	got, err := suite.repo.GetDefault(suite.context, suite.ownerID)
	assert.Nil(suite.T(), got)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *FeeSettingsRepoTestSuite) TestList() {
	a := suite.settings(true)
	b := suite.settings(false)
	rows := pgxmock.NewRows([]string{"id", "owner_id", "name", "commission_rate", "affiliate_rate", "per_item_fee", "tax_rate", "pre_tax_discount_rate", "entry_invoice_percent", "advance_payment_enabled", "advance_payment_rate", "ad_spend", "is_default", "created_at", "updated_at"})
	for _, s := range []*models.FeeSettings{a, b} {
		rows.AddRow(s.ID, s.OwnerID, s.Name, s.CommissionRate, s.AffiliateRate, s.PerItemFee, s.TaxRate, s.PreTaxDiscountRate, s.EntryInvoicePercent, s.AdvancePaymentEnabled, s.AdvancePaymentRate, s.AdSpend, s.IsDefault, s.CreatedAt, s.UpdatedAt)
	}
	suite.mock.ExpectQuery(regexp.QuoteMeta(`FROM fee_settings WHERE owner_id = $1 ORDER BY is_default DESC, name`)).
		WithArgs(suite.ownerID).
		WillReturnRows(rows)

	got, err := suite.repo.List(suite.context, suite.ownerID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
	assert.True(suite.T(), got[0].IsDefault)
}

func (suite *FeeSettingsRepoTestSuite) TestUpdate_NotFound() {
	s := suite.settings(false)

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE fee_settings`)).
		WithArgs(s.Name, s.CommissionRate, s.AffiliateRate, s.PerItemFee, s.TaxRate, s.PreTaxDiscountRate, s.EntryInvoicePercent, s.AdvancePaymentEnabled, s.AdvancePaymentRate, s.AdSpend, s.IsDefault, s.OwnerID, s.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	suite.mock.ExpectRollback()

	assert.ErrorIs(suite.T(), suite.repo.Update(suite.context, s), ErrNotFound)
}

func (suite *FeeSettingsRepoTestSuite) TestDelete() {
	id := uuid.New()
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM fee_settings WHERE owner_id = $1 AND id = $2`)).
		WithArgs(suite.ownerID, id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(suite.T(), suite.repo.Delete(suite.context, suite.ownerID, id))
}
