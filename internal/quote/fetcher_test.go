package quote_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ytget/finance-dashboard/internal/market"
	"github.com/ytget/finance-dashboard/internal/market/mocks"
	"github.com/ytget/finance-dashboard/internal/quote"
)

var fixedNow = time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// tradingDays returns n consecutive daily bars ending on fixedNow's date.
func tradingDays(n int, closes ...float64) []market.Bar {
	bars := make([]market.Bar, n)
	start := time.Date(2026, 10, 16, 13, 30, 0, 0, time.UTC).AddDate(0, 0, -(n - 1))
	for i := range bars {
		c := 100.0 + float64(i)
		if i < len(closes) {
			c = closes[i]
		}
		bars[i] = market.Bar{Time: start.AddDate(0, 0, i), Close: c}
	}
	return bars
}

func newProvider(t *testing.T) *mocks.MockProvider {
	t.Helper()
	ctrl := gomock.NewController(t)
	p := mocks.NewMockProvider(ctrl)
	p.EXPECT().Name().Return("mock").AnyTimes()
	return p
}

func lookbackOf(from time.Time) int {
	return int(fixedNow.Sub(from).Hours() / 24)
}

func TestFetch_EnoughDaysFirstTry(t *testing.T) {
	t.Parallel()

	// Arrange: five trading days without gaps
	p := newProvider(t)
	p.EXPECT().
		DailyCloses(gomock.Any(), "AAPL", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, from, to time.Time) ([]market.Bar, error) {
			require.Equal(t, quote.DefaultMinDays, lookbackOf(from))
			require.True(t, to.Equal(fixedNow))
			return tradingDays(5, 101.37, 102.01, 99.99, 100.05, 100.1), nil
		}).
		Times(1)
	p.EXPECT().
		IntradayCloses(gomock.Any(), "AAPL").
		Return([]market.Bar{{Time: fixedNow.Add(-2 * time.Minute), Close: 100.5}, {Time: fixedNow, Close: 101.37}}, nil).
		Times(1)

	f := quote.NewFetcher(p, quote.WithClock(clock))

	// Act
	q, err := f.Fetch(context.Background(), "AAPL")

	// Assert
	require.NoError(t, err)
	require.Len(t, q.Prices, 5)
	assert.Equal(t, quote.DefaultMinDays, q.Lookback)
	assert.Equal(t, "AAPL", q.Ticker)
	assert.NotEmpty(t, q.RequestID)
	assert.Equal(t, []string{"2026-10-12", "2026-10-13", "2026-10-14", "2026-10-15", "2026-10-16"}, q.Prices.Dates())
	assert.Equal(t, []float64{101.35, 102, 99.95, 100.05, 100.1}, q.Prices.Closes())
	assert.Equal(t, "101.35", q.Latest.StringFixed(2))
	assert.Equal(t, "AAPL\nLast Price: 101.35", q.Heading("Last Price"))
}

func TestFetch_WidensLookbackUntilEnoughDays(t *testing.T) {
	t.Parallel()

	p := newProvider(t)
	var lookbacks []int
	p.EXPECT().
		DailyCloses(gomock.Any(), "MSFT", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, from, _ time.Time) ([]market.Bar, error) {
			lb := lookbackOf(from)
			lookbacks = append(lookbacks, lb)
			// a weekend inside the window: two fewer trading days than calendar days
			n := lb - 2
			return tradingDays(n), nil
		}).
		Times(3)
	p.EXPECT().IntradayCloses(gomock.Any(), "MSFT").Return(tradingDays(1), nil)

	f := quote.NewFetcher(p, quote.WithClock(clock))
	q, err := f.Fetch(context.Background(), "MSFT")

	require.NoError(t, err)
	assert.Equal(t, []int{5, 6, 7}, lookbacks)
	assert.Equal(t, 7, q.Lookback)
	assert.Len(t, q.Prices, 5)
}

func TestFetch_StopsAtCap(t *testing.T) {
	t.Parallel()

	p := newProvider(t)
	calls := 0
	p.EXPECT().
		DailyCloses(gomock.Any(), "THIN", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, from, _ time.Time) ([]market.Bar, error) {
			calls++
			require.LessOrEqual(t, lookbackOf(from), quote.DefaultMinDays+quote.DefaultWidenSpan)
			return tradingDays(2), nil
		}).
		AnyTimes()
	p.EXPECT().IntradayCloses(gomock.Any(), "THIN").Return(tradingDays(1), nil)

	f := quote.NewFetcher(p, quote.WithClock(clock))
	q, err := f.Fetch(context.Background(), "THIN")

	// the last undersized series is returned once the cap is reached
	require.NoError(t, err)
	assert.Equal(t, quote.DefaultWidenSpan+1, calls)
	assert.Equal(t, f.MaxLookback(), q.Lookback)
	assert.Len(t, q.Prices, 2)
}

func TestFetch_ComparesAgainstMinDaysNotWidenedWindow(t *testing.T) {
	t.Parallel()

	// Once five rows arrive the loop stops even though the window is wider than five
	p := newProvider(t)
	p.EXPECT().
		DailyCloses(gomock.Any(), "X", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, from, _ time.Time) ([]market.Bar, error) {
			if lookbackOf(from) < 9 {
				return tradingDays(4), nil
			}
			return tradingDays(5), nil
		}).
		Times(5)
	p.EXPECT().IntradayCloses(gomock.Any(), "X").Return(tradingDays(1), nil)

	f := quote.NewFetcher(p, quote.WithClock(clock))
	q, err := f.Fetch(context.Background(), "X")

	require.NoError(t, err)
	assert.Equal(t, 9, q.Lookback)
}

func TestFetch_ProviderFailure(t *testing.T) {
	t.Parallel()

	p := newProvider(t)
	p.EXPECT().
		DailyCloses(gomock.Any(), "AAPL", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("dial tcp: connection refused"))

	f := quote.NewFetcher(p, quote.WithClock(clock))
	q, err := f.Fetch(context.Background(), "AAPL")

	require.Nil(t, q)
	require.Error(t, err)

	var fe *quote.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, quote.KindTransport, fe.Kind)
	assert.Equal(t, "AAPL", fe.Ticker)
	assert.ErrorIs(t, err, quote.ErrTransport)
	assert.NotErrorIs(t, err, quote.ErrNoData)
}

func TestFetch_UnknownTickerResetsLookback(t *testing.T) {
	t.Parallel()

	p := newProvider(t)
	var firstLookbacks []int
	gomock.InOrder(
		p.EXPECT().
			DailyCloses(gomock.Any(), "ZZZINVALID", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, from, _ time.Time) ([]market.Bar, error) {
				firstLookbacks = append(firstLookbacks, lookbackOf(from))
				return tradingDays(1), nil
			}).
			Times(3),
		p.EXPECT().
			DailyCloses(gomock.Any(), "ZZZINVALID", gomock.Any(), gomock.Any()).
			Return(nil, errors.New("symbol may be delisted: no data")),
		p.EXPECT().
			DailyCloses(gomock.Any(), "ZZZINVALID", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, from, _ time.Time) ([]market.Bar, error) {
				firstLookbacks = append(firstLookbacks, lookbackOf(from))
				return nil, market.ErrNoData
			}),
	)

	f := quote.NewFetcher(p, quote.WithClock(clock))

	_, err := f.Fetch(context.Background(), "ZZZINVALID")
	require.ErrorIs(t, err, quote.ErrTransport)

	// next search starts again from the default window
	_, err = f.Fetch(context.Background(), "ZZZINVALID")
	require.ErrorIs(t, err, quote.ErrNoData)
	assert.Equal(t, []int{5, 6, 7, 5}, firstLookbacks)
}

func TestFetch_EmptySeriesIsNoData(t *testing.T) {
	t.Parallel()

	p := newProvider(t)
	p.EXPECT().
		DailyCloses(gomock.Any(), "EMPTY", gomock.Any(), gomock.Any()).
		Return([]market.Bar{}, nil).
		Times(quote.DefaultWidenSpan + 1)
	p.EXPECT().IntradayCloses(gomock.Any(), "EMPTY").Return(tradingDays(1), nil)

	f := quote.NewFetcher(p, quote.WithClock(clock))
	q, err := f.Fetch(context.Background(), "EMPTY")

	require.Nil(t, q)
	assert.ErrorIs(t, err, quote.ErrNoData)
	assert.ErrorIs(t, err, market.ErrNoData)
}

func TestFetch_NoIntradaySamples(t *testing.T) {
	t.Parallel()

	p := newProvider(t)
	p.EXPECT().DailyCloses(gomock.Any(), "AAPL", gomock.Any(), gomock.Any()).Return(tradingDays(5), nil)
	p.EXPECT().IntradayCloses(gomock.Any(), "AAPL").Return(nil, nil)

	f := quote.NewFetcher(p, quote.WithClock(clock))
	_, err := f.Fetch(context.Background(), "AAPL")

	assert.ErrorIs(t, err, quote.ErrNoData)
}

func TestFetch_IntradayFailure(t *testing.T) {
	t.Parallel()

	p := newProvider(t)
	p.EXPECT().DailyCloses(gomock.Any(), "AAPL", gomock.Any(), gomock.Any()).Return(tradingDays(5), nil)
	p.EXPECT().IntradayCloses(gomock.Any(), "AAPL").Return(nil, errors.New("timeout"))

	f := quote.NewFetcher(p, quote.WithClock(clock))
	_, err := f.Fetch(context.Background(), "AAPL")

	assert.ErrorIs(t, err, quote.ErrTransport)
}

func TestFetch_EmptyTicker(t *testing.T) {
	t.Parallel()

	// no provider calls expected
	p := newProvider(t)
	f := quote.NewFetcher(p, quote.WithClock(clock))

	_, err := f.Fetch(context.Background(), "   ")
	assert.ErrorIs(t, err, quote.ErrEmptyTicker)
}

func TestFetch_SameDataTwiceIsIdentical(t *testing.T) {
	t.Parallel()

	p := newProvider(t)
	p.EXPECT().DailyCloses(gomock.Any(), "AAPL", gomock.Any(), gomock.Any()).Return(tradingDays(5, 101.37), nil).Times(2)
	p.EXPECT().IntradayCloses(gomock.Any(), "AAPL").Return(tradingDays(1, 150.33), nil).Times(2)

	f := quote.NewFetcher(p, quote.WithClock(clock))

	first, err := f.Fetch(context.Background(), "AAPL")
	require.NoError(t, err)
	second, err := f.Fetch(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, first.Prices, second.Prices)
	assert.Equal(t, first.Heading("Last Price"), second.Heading("Last Price"))
	assert.Equal(t, first.Lookback, second.Lookback)
	assert.NotEqual(t, first.RequestID, second.RequestID)
}

func TestFetch_NormalizesTicker(t *testing.T) {
	t.Parallel()

	p := newProvider(t)
	p.EXPECT().DailyCloses(gomock.Any(), "AAPL", gomock.Any(), gomock.Any()).Return(tradingDays(5), nil)
	p.EXPECT().IntradayCloses(gomock.Any(), "AAPL").Return(tradingDays(1), nil)

	f := quote.NewFetcher(p, quote.WithClock(clock))
	q, err := f.Fetch(context.Background(), "  aapl \n")

	require.NoError(t, err)
	assert.Equal(t, "AAPL", q.Ticker)
}

func TestNewFetcher_Options(t *testing.T) {
	t.Parallel()

	p := newProvider(t)

	f := quote.NewFetcher(p, quote.WithMinDays(10), quote.WithWidenSpan(3))
	assert.Equal(t, 10, f.MinDays())
	assert.Equal(t, 13, f.MaxLookback())

	// invalid values keep the defaults
	f = quote.NewFetcher(p, quote.WithMinDays(0), quote.WithWidenSpan(-1), quote.WithClock(nil))
	assert.Equal(t, quote.DefaultMinDays, f.MinDays())
	assert.Equal(t, quote.DefaultMinDays+quote.DefaultWidenSpan, f.MaxLookback())
}
