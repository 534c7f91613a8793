package storage

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/guregu/null/v6"
	"github.com/guttosm/stockpulse/internal/domain/models"
)

func newMockRepo(t *testing.T) (*analysisRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	repo := &analysisRepository{db: db}
	cleanup := func() { _ = db.Close() }
	return repo, mock, cleanup
}

func sampleSummary() *models.AnalysisSummary {
	return &models.AnalysisSummary{
		Symbol:             "IBM",
		LatestDate:         time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC),
		LatestPrice:        250.12,
		DailyChangePercent: null.FloatFrom(1.25),
		Sentiment:          "Trend: Bullish, RSI: Neutral (54.32)",
		Trend:              "Bullish",
		Momentum:           "Neutral",
		CurrentRSI:         null.FloatFrom(54.32),
		MAShort:            null.FloatFrom(248.1),
		MALong:             null.Float{},
	}
}

func TestRecordAnalysis_SQLMock(t *testing.T) {
	insert := regexp.QuoteMeta("INSERT INTO analysis_log")
	s := sampleSummary()

	cases := []struct {
		name    string
		execErr error
		wantErr bool
	}{
		{name: "success"},
		{name: "db error", execErr: errors.New("connection reset"), wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, done := newMockRepo(t)
			defer done()

			exp := mock.ExpectExec(insert).WithArgs(
				"IBM", s.LatestDate, 250.12, 1.25, s.Sentiment, "Bullish", "Neutral", 54.32, 248.1, nil,
			)
			if tc.execErr != nil {
				exp.WillReturnError(tc.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(1, 1))
			}

			err := repo.RecordAnalysis(context.Background(), s)
			if tc.wantErr != (err != nil) {
				t.Fatalf("RecordAnalysis()=%v, wantErr=%v", err, tc.wantErr)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestRecentAnalyses_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	day := time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, 9, 12, 21, 0, 0, 0, time.UTC)
	cols := []string{"id", "symbol", "latest_date", "latest_price", "daily_change_percent", "sentiment", "trend", "momentum", "rsi", "ma_short", "ma_long", "created_at"}
	rows := sqlmock.NewRows(cols).
		AddRow(int64(2), "IBM", day, 250.12, 1.25, "Trend: Bullish, RSI: Neutral (54.32)", "Bullish", "Neutral", 54.32, 248.1, 240.0, created).
		AddRow(int64(1), "IBM", day, 250.12, nil, "Insufficient data for analysis", "", "", nil, nil, nil, created.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("FROM analysis_log")).
		WithArgs("IBM", 5).
		WillReturnRows(rows)

	out, err := repo.RecentAnalyses(context.Background(), "IBM", 5)
	if err != nil {
		t.Fatalf("RecentAnalyses: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	if out[0].ID != 2 || !out[0].CurrentRSI.Valid || out[0].CurrentRSI.Float64 != 54.32 {
		t.Fatalf("unexpected first record %+v", out[0])
	}
	if out[1].CurrentRSI.Valid || out[1].DailyChangePercent.Valid || out[1].MALong.Valid {
		t.Fatalf("NULL columns must scan as undefined: %+v", out[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecentAnalyses_QueryError(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta("FROM analysis_log")).WillReturnError(errors.New("boom"))
	if _, err := repo.RecentAnalyses(context.Background(), "IBM", 5); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNoopRepository(t *testing.T) {
	repo := NewNoopRepository()
	if err := repo.RecordAnalysis(context.Background(), sampleSummary()); err != nil {
		t.Fatalf("RecordAnalysis: %v", err)
	}
	out, err := repo.RecentAnalyses(context.Background(), "IBM", 10)
	if err != nil || out != nil {
		t.Fatalf("unexpected out=%v err=%v", out, err)
	}
}
