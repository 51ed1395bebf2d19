package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"payment-lifecycle-service/internal/adapter/http/dto"
	"payment-lifecycle-service/internal/core/domain"
	"payment-lifecycle-service/internal/core/ports"
	"payment-lifecycle-service/internal/core/ports/mocks"
	"payment-lifecycle-service/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Auth Handler Tests ---

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	clientID := uuid.New()
	mockAuth.EXPECT().Register(gomock.Any(), "billing-worker").Return(&ports.RegisterClientResponse{
		ClientID: clientID,
		APIKey:   "ak_test",
		Secret:   "sk_test",
	}, nil)

	body, _ := json.Marshal(dto.RegisterClientRequest{Name: "billing-worker"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/clients", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, clientID.String(), data["client_id"])
	assert.Equal(t, "ak_test", data["api_key"])
	assert.Equal(t, "sk_test", data["secret"])
}

func TestRegister_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	// Empty body => binding error
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/clients", bytes.NewReader([]byte("{}")))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	expiry := time.Now().Add(time.Hour)
	mockAuth.EXPECT().IssueToken(gomock.Any(), "ak_test", "sk_test").Return("jwt-token-123", expiry, nil)

	body, _ := json.Marshal(dto.TokenRequest{APIKey: "ak_test", Secret: "sk_test"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Token(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "jwt-token-123", data["token"])
	assert.Equal(t, float64(expiry.Unix()), data["expiry"])
}

func TestToken_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().IssueToken(gomock.Any(), "bad", "bad").
		Return("", time.Time{}, apperror.ErrInvalidCredentials())

	body, _ := json.Marshal(dto.TokenRequest{APIKey: "bad", Secret: "bad"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Token(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Cart Payment Handler Tests ---

func createCartPaymentBody() dto.CreateCartPaymentRequest {
	return dto.CreateCartPaymentRequest{
		IdempotencyKey:  "payin-create-9f2d01",
		PayerID:         uuid.New().String(),
		Amount:          15000,
		Country:         "US",
		Currency:        "usd",
		PaymentMethodID: uuid.New().String(),
		CaptureMethod:   "AUTO",
		CartMetadata: dto.CartMetadataDTO{
			ReferenceID:   "order-441",
			CtReferenceID: "ct-441",
			Type:          "ORDER_CART",
		},
	}
}

func TestCreateCartPayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProcessor := mocks.NewMockCartPaymentProcessor(ctrl)
	h := NewCartPaymentHandler(mockProcessor)

	reqBody := createCartPaymentBody()
	paymentID := uuid.New()
	now := time.Now()

	mockProcessor.EXPECT().SubmitPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req ports.SubmitCartPaymentRequest) (*domain.CartPayment, error) {
			assert.Equal(t, "payin-create-9f2d01", req.IdempotencyKey)
			assert.Equal(t, int64(15000), req.Amount)
			assert.Equal(t, domain.CaptureMethodAuto, req.CaptureMethod)
			return &domain.CartPayment{
				ID:              paymentID,
				PayerID:         req.PayerID,
				Amount:          req.Amount,
				Currency:        req.Currency,
				Country:         req.Country,
				PaymentMethodID: req.PaymentMethodID,
				CaptureMethod:   req.CaptureMethod,
				CartMetadata:    req.CartMetadata,
				CreatedAt:       now,
				UpdatedAt:       now,
			}, nil
		})

	body, _ := json.Marshal(reqBody)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, paymentID.String(), data["id"])
	assert.Equal(t, float64(15000), data["amount"])
	assert.Equal(t, "usd", data["currency"])
}

func TestCreateCartPayment_MissingIdempotencyKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProcessor := mocks.NewMockCartPaymentProcessor(ctrl)
	h := NewCartPaymentHandler(mockProcessor)

	reqBody := createCartPaymentBody()
	reqBody.IdempotencyKey = ""
	body, _ := json.Marshal(reqBody)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCartPayment_IdempotencyConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProcessor := mocks.NewMockCartPaymentProcessor(ctrl)
	h := NewCartPaymentHandler(mockProcessor)

	mockProcessor.EXPECT().SubmitPayment(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrIdempotencyConflict())

	body, _ := json.Marshal(createCartPaymentBody())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PAYIN_004", resp["error_code"])
}

func TestAdjustCartPayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProcessor := mocks.NewMockCartPaymentProcessor(ctrl)
	h := NewCartPaymentHandler(mockProcessor)

	paymentID := uuid.New()
	payerID := uuid.New()
	newAmount := int64(18000)
	now := time.Now()

	mockProcessor.EXPECT().UpdatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req ports.UpdateCartPaymentRequest) (*domain.CartPayment, error) {
			assert.Equal(t, paymentID, req.CartPaymentID)
			assert.Equal(t, payerID, req.PayerID)
			require.NotNil(t, req.Amount)
			assert.Equal(t, newAmount, *req.Amount)
			return &domain.CartPayment{
				ID:              paymentID,
				PayerID:         payerID,
				Amount:          newAmount,
				Currency:        "usd",
				Country:         "US",
				PaymentMethodID: uuid.New(),
				CaptureMethod:   domain.CaptureMethodAuto,
				CreatedAt:       now,
				UpdatedAt:       now,
			}, nil
		})

	body, _ := json.Marshal(dto.AdjustCartPaymentRequest{
		IdempotencyKey: "payin-adjust-77",
		PayerID:        payerID.String(),
		Amount:         &newAmount,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: paymentID.String()}}

	h.Adjust(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(18000), data["amount"])
}

func TestAdjustCartPayment_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProcessor := mocks.NewMockCartPaymentProcessor(ctrl)
	h := NewCartPaymentHandler(mockProcessor)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.Adjust(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdjustCartPayment_OwnershipMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProcessor := mocks.NewMockCartPaymentProcessor(ctrl)
	h := NewCartPaymentHandler(mockProcessor)

	mockProcessor.EXPECT().UpdatePayment(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrOwnershipMismatch("cart payment"))

	body, _ := json.Marshal(dto.AdjustCartPaymentRequest{
		IdempotencyKey: "payin-adjust-78",
		PayerID:        uuid.New().String(),
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}

	h.Adjust(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Transfer Handler Tests ---

func TestCreateTransfer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProcessor := mocks.NewMockTransferProcessor(ctrl)
	h := NewTransferHandler(mockProcessor)

	transferID := uuid.New()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	mockProcessor.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req ports.CreateTransferRequest) (*domain.Transfer, error) {
			assert.Equal(t, int64(42), req.PayoutAccountID)
			assert.True(t, req.StartTime.Equal(start))
			assert.True(t, req.EndTime.Equal(end))
			return &domain.Transfer{
				ID:              transferID,
				PayoutAccountID: req.PayoutAccountID,
				TransferType:    req.TransferType,
				Amount:          15000,
				Currency:        req.Currency,
				StartTime:       req.StartTime,
				EndTime:         req.EndTime,
				Status:          domain.TransferStatusCreated,
				CreatedByID:     req.CreatedByID,
				CreatedAt:       time.Now(),
			}, nil
		})

	body, _ := json.Marshal(dto.CreateTransferRequest{
		PayoutAccountID: 42,
		TransferType:    "SCHEDULED",
		StartTime:       start.Format(time.RFC3339),
		EndTime:         end.Format(time.RFC3339),
		Currency:        "usd",
		CreatedByID:     7,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, transferID.String(), data["id"])
	assert.Equal(t, "CREATED", data["status"])
	assert.Equal(t, float64(15000), data["amount"])
}

func TestCreateTransfer_BadStartTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProcessor := mocks.NewMockTransferProcessor(ctrl)
	h := NewTransferHandler(mockProcessor)

	body, _ := json.Marshal(dto.CreateTransferRequest{
		PayoutAccountID: 42,
		TransferType:    "SCHEDULED",
		StartTime:       "yesterday",
		EndTime:         time.Now().Format(time.RFC3339),
		Currency:        "usd",
		CreatedByID:     7,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTransfer_InvalidWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProcessor := mocks.NewMockTransferProcessor(ctrl)
	h := NewTransferHandler(mockProcessor)

	mockProcessor.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInvalidTimeWindow())

	now := time.Now().UTC()
	body, _ := json.Marshal(dto.CreateTransferRequest{
		PayoutAccountID: 42,
		TransferType:    "SCHEDULED",
		StartTime:       now.Format(time.RFC3339),
		EndTime:         now.Add(-time.Hour).Format(time.RFC3339),
		Currency:        "usd",
		CreatedByID:     7,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PAYOUT_001", resp["error_code"])
}

func TestSubmitTransfer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProcessor := mocks.NewMockTransferProcessor(ctrl)
	h := NewTransferHandler(mockProcessor)

	transferID := uuid.New()
	recordID := uuid.New()
	payoutID := "po_1Abc"
	now := time.Now()

	mockProcessor.EXPECT().SubmitTransfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req ports.SubmitTransferRequest) (*domain.StripePayoutRequest, error) {
			assert.Equal(t, transferID, req.TransferID)
			assert.Equal(t, int64(9), req.SubmittedBy)
			assert.False(t, req.Retry)
			return &domain.StripePayoutRequest{
				ID:             recordID,
				TransferID:     transferID,
				IdempotencyKey: domain.BuildTransferSubmissionKey(transferID),
				PayoutMethodID: req.PayoutMethodID,
				Status:         domain.PayoutRequestStatusPaid,
				StripePayoutID: &payoutID,
				ReceivedAt:     &now,
				CreatedAt:      now,
			}, nil
		})

	body, _ := json.Marshal(dto.SubmitTransferRequest{
		SubmittedBy:         9,
		StatementDescriptor: "WEEKLY PAYOUT",
		Method:              "standard",
		PayoutMethodID:      3,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: transferID.String()}}

	h.Submit(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, recordID.String(), data["id"])
	assert.Equal(t, "paid", data["status"])
	assert.Equal(t, "po_1Abc", data["stripe_payout_id"])
	assert.Equal(t, "transfer-submit-"+transferID.String(), data["idempotency_key"])
}

func TestSubmitTransfer_GatewayError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProcessor := mocks.NewMockTransferProcessor(ctrl)
	h := NewTransferHandler(mockProcessor)

	mockProcessor.EXPECT().SubmitTransfer(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrGateway(true, errors.New("stripe 503")))

	body, _ := json.Marshal(dto.SubmitTransferRequest{
		SubmittedBy:         9,
		StatementDescriptor: "WEEKLY PAYOUT",
		Method:              "standard",
		PayoutMethodID:      3,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}

	h.Submit(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PAYOUT_003", resp["error_code"])
}

func TestSubmitTransfer_WrongState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProcessor := mocks.NewMockTransferProcessor(ctrl)
	h := NewTransferHandler(mockProcessor)

	mockProcessor.EXPECT().SubmitTransfer(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInvalidStateTransition("SKIPPED", "submit"))

	body, _ := json.Marshal(dto.SubmitTransferRequest{
		SubmittedBy:         9,
		StatementDescriptor: "WEEKLY PAYOUT",
		Method:              "standard",
		PayoutMethodID:      3,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}

	h.Submit(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Account Handler Tests ---

func TestRecordBankUpdate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mocks.NewMockAccountHistoryService(ctrl)
	h := NewAccountHandler(mockHistory)

	entryID := uuid.New()
	payload := json.RawMessage(`{"bank_name":"First National"}`)
	now := time.Now()

	mockHistory.EXPECT().
		RecordBankUpdate(gomock.Any(), int64(501), domain.BankUpdateOwnerTypeStore, gomock.Any()).
		Return(&domain.PaymentAccountEditHistory{
			ID:               entryID,
			PaymentAccountID: 501,
			OwnerType:        domain.BankUpdateOwnerTypeStore,
			Payload:          payload,
			Timestamp:        now,
		}, nil)

	body, _ := json.Marshal(dto.RecordBankUpdateRequest{
		PaymentAccountID: 501,
		OwnerType:        "STORE",
		Payload:          payload,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.RecordBankUpdate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, entryID.String(), data["id"])
	assert.Equal(t, "STORE", data["owner_type"])
}

func TestRecordBankUpdate_BadOwnerType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mocks.NewMockAccountHistoryService(ctrl)
	h := NewAccountHandler(mockHistory)

	body := []byte(`{"payment_account_id":501,"owner_type":"MERCHANT","payload":{}}`)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.RecordBankUpdate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMostRecentBankUpdate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mocks.NewMockAccountHistoryService(ctrl)
	h := NewAccountHandler(mockHistory)

	entryID := uuid.New()
	mockHistory.EXPECT().
		GetMostRecentBankUpdate(gomock.Any(), int64(501), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ int64, within *time.Duration) (*domain.PaymentAccountEditHistory, error) {
			require.NotNil(t, within)
			assert.Equal(t, 24*time.Hour, *within)
			return &domain.PaymentAccountEditHistory{
				ID:               entryID,
				PaymentAccountID: 501,
				OwnerType:        domain.BankUpdateOwnerTypeDSP,
				Timestamp:        time.Now(),
			}, nil
		})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?within_hours=24", nil)
	c.Params = gin.Params{{Key: "id", Value: "501"}}

	h.GetMostRecentBankUpdate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, entryID.String(), data["id"])
	assert.Equal(t, "DSP", data["owner_type"])
}

func TestGetMostRecentBankUpdate_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mocks.NewMockAccountHistoryService(ctrl)
	h := NewAccountHandler(mockHistory)

	mockHistory.EXPECT().
		GetMostRecentBankUpdate(gomock.Any(), int64(501), nil).
		Return(nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "501"}}

	h.GetMostRecentBankUpdate(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMostRecentBankUpdate_BadAccountID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mocks.NewMockAccountHistoryService(ctrl)
	h := NewAccountHandler(mockHistory)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "-1"}}

	h.GetMostRecentBankUpdate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBankUpdates_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mocks.NewMockAccountHistoryService(ctrl)
	h := NewAccountHandler(mockHistory)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	mockHistory.EXPECT().
		ListBankUpdates(gomock.Any(), int64(501), gomock.Any(), gomock.Any()).
		Return([]domain.PaymentAccountEditHistory{
			{ID: uuid.New(), PaymentAccountID: 501, OwnerType: domain.BankUpdateOwnerTypeStore, Timestamp: start.Add(time.Hour)},
			{ID: uuid.New(), PaymentAccountID: 501, OwnerType: domain.BankUpdateOwnerTypeStore, Timestamp: start.Add(2 * time.Hour)},
		}, nil)

	url := fmt.Sprintf("/?start=%s&end=%s",
		start.Format(time.RFC3339), end.Format(time.RFC3339))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, url, nil)
	c.Params = gin.Params{{Key: "id", Value: "501"}}

	h.ListBankUpdates(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])
	assert.Len(t, data["items"].([]interface{}), 2)
}

func TestListBankUpdates_MissingWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mocks.NewMockAccountHistoryService(ctrl)
	h := NewAccountHandler(mockHistory)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "501"}}

	h.ListBankUpdates(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRecentlyUpdatedAccounts_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mocks.NewMockAccountHistoryService(ctrl)
	h := NewAccountHandler(mockHistory)

	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mockHistory.EXPECT().
		ListRecentlyUpdatedAccountIDs(gomock.Any(), gomock.Any()).
		Return([]int64{501, 502, 777}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?since="+since.Format(time.RFC3339), nil)

	h.ListRecentlyUpdatedAccounts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	ids := data["payment_account_ids"].([]interface{})
	assert.Len(t, ids, 3)
}

// --- Health Check Test ---

func TestHealthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}
