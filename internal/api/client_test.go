package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"moneytrack/internal/domain"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, srv.Client(), 30, nil)
}

func envelope(t *testing.T, w http.ResponseWriter, payload any) {
	t.Helper()
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"data": payload}))
}

func TestFetchMovementsQuery(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/movements", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "30", r.URL.Query().Get("per"))
		require.Equal(t, accountID.String(), r.URL.Query().Get("accountID"))
		envelope(t, w, domain.Page[domain.Movement]{
			Metadata: domain.PageMetadata{Page: 2, Per: 30, Total: 31, PageCount: 2},
		})
	})

	page, err := c.FetchMovementsByAccount(context.Background(), accountID, 2)
	require.NoError(t, err)
	require.Equal(t, 2, page.Metadata.Page)
	require.Equal(t, 31, page.Metadata.Total)
}

func TestFetchMovementsUnscopedOmitsAccount(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.False(t, r.URL.Query().Has("accountID"))
		envelope(t, w, domain.Page[domain.Movement]{})
	})

	_, err := c.FetchMovements(context.Background(), 1)
	require.NoError(t, err)
}

func TestSetCategoryBody(t *testing.T) {
	t.Parallel()

	movementID, categoryID := uuid.New(), uuid.New()
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/movements/"+movementID.String()+"/category", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, categoryID.String(), body["categoryID"])
		envelope(t, w, domain.Movement{ID: movementID, Category: domain.Category{ID: categoryID}})
	})

	m, err := c.SetCategory(context.Background(), movementID, categoryID)
	require.NoError(t, err)
	require.Equal(t, categoryID, m.Category.ID)
}

func TestImportMultipart(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	remove := "Payment: "
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/movements/"+accountID.String()+"/import", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		require.Equal(t, "zkb", r.FormValue("fileType"))
		require.Equal(t, "true", r.FormValue("skipParsingErrors"))
		require.Equal(t, "false", r.FormValue("skipExisting"))
		require.Equal(t, remove, r.FormValue("removeText"))

		file, header, err := r.FormFile("records[]")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "export.csv", header.Filename)
		require.Equal(t, "text/csv", header.Header.Get("Content-Type"))

		envelope(t, w, domain.Page[domain.Movement]{
			Metadata: domain.PageMetadata{Page: 1, Per: 30, Total: 2, PageCount: 1},
		})
	})

	page, err := c.Import(context.Background(), accountID, domain.MovementImport{
		FileType:          domain.ImportFileZKB,
		Filename:          "export.csv",
		Data:              []byte("date,amount\n2024-06-10,-12.50\n"),
		SkipParsingErrors: true,
		RemoveText:        &remove,
	})
	require.NoError(t, err)
	require.Equal(t, 2, page.Metadata.Total)
}

func TestImportValidation(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("invalid upload must not reach the server")
	})

	_, err := c.Import(context.Background(), uuid.New(), domain.MovementImport{
		FileType: "unknown",
		Filename: "export.csv",
		Data:     []byte("x"),
	})
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindBadRequest, kind)
}

func TestAdjustBalanceBody(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/movements/"+accountID.String()+"/adjust", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "2024-06-10", body["date"])
		require.Equal(t, "2500.75", fmt.Sprint(body["balance"]))
		_, hasNote := body["note"]
		require.False(t, hasNote, "empty note stays off the wire")
		envelope(t, w, domain.Movement{ID: uuid.New()})
	})

	balance, err := domain.MoneyFromString("2500.75", domain.CurrencyCHF)
	require.NoError(t, err)
	_, err = c.AdjustBalance(context.Background(), accountID, domain.BalanceAdjustment{
		Date:    time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC),
		Balance: balance,
	})
	require.NoError(t, err)
}

func TestAbortBecomesCustomError(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":true,"reason":"account not found"}`))
	})

	_, err := c.FetchAccounts(context.Background())
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindCustom, kind)
	require.Contains(t, err.Error(), "account not found")
}

func TestPlainFailureBecomesRequestFailed(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.FetchAccounts(context.Background())
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindRequestFailed, kind)
}

func TestGarbageBodyBecomesDecodingError(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	_, err := c.FetchAccounts(context.Background())
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindDecoding, kind)
}

func TestFetchAccountsOrdered(t *testing.T) {
	t.Parallel()

	cash := domain.AccountGroup{ID: uuid.New(), Name: "Cash", Order: 0}
	invest := domain.AccountGroup{ID: uuid.New(), Name: "Investments", Order: 1}
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		envelope(t, w, []domain.Account{
			{ID: uuid.New(), Group: invest, Name: "Broker", Balance: domain.NewMoney(9000, domain.CurrencyCHF)},
			{ID: uuid.New(), Group: cash, Name: "Checking", Balance: domain.NewMoney(100, domain.CurrencyCHF)},
		})
	})

	accounts, err := c.FetchAccounts(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Checking", accounts[0].Name)
	require.Equal(t, "Broker", accounts[1].Name)
}
