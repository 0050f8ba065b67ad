package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mockUC "classping/internal/mocks/usecase"
	"classping/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDispatchContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestDispatchHandler_SendToUser_RequiresUserID(t *testing.T) {
	handler := NewDispatchHandler(mockUC.NewMockDispatchUsecase(t), slog.Default())

	c, rec := newDispatchContext(http.MethodPost, "/send-notification", `{"title":"hi"}`)

	require.NoError(t, handler.SendToUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "userId is required")
}

func TestDispatchHandler_SendToUser_EngineFailureIsBadRequest(t *testing.T) {
	uc := mockUC.NewMockDispatchUsecase(t)
	handler := NewDispatchHandler(uc, slog.Default())

	uc.EXPECT().
		SendToUser(mock.Anything, "user-1", mock.Anything).
		Return(&usecase.DispatchResult{
			Success: false,
			Message: "no push tokens registered for user",
		})

	c, rec := newDispatchContext(http.MethodPost, "/send-notification", `{"userId":"user-1"}`)

	require.NoError(t, handler.SendToUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no push tokens")
}

func TestDispatchHandler_SendToUser_Success(t *testing.T) {
	uc := mockUC.NewMockDispatchUsecase(t)
	handler := NewDispatchHandler(uc, slog.Default())

	uc.EXPECT().
		SendToUser(mock.Anything, "user-1", mock.Anything).
		Return(&usecase.DispatchResult{
			Success:       true,
			SuccessCount:  2,
			UsersNotified: 1,
		})

	c, rec := newDispatchContext(http.MethodPost, "/send-notification",
		`{"userId":"user-1","title":"hello","body":"world"}`)

	require.NoError(t, handler.SendToUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"timestamp":`)
}

func TestDispatchHandler_SendClassReminders_QueryParam(t *testing.T) {
	uc := mockUC.NewMockDispatchUsecase(t)
	handler := NewDispatchHandler(uc, slog.Default())

	uc.EXPECT().
		SendClassReminders(mock.Anything, 30).
		Return(&usecase.DispatchResult{Success: true})

	c, rec := newDispatchContext(http.MethodGet, "/send-class-reminders?minutesBefore=30", "")

	require.NoError(t, handler.SendClassReminders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDispatchHandler_SendClassReminders_RejectsOtherOffsets(t *testing.T) {
	handler := NewDispatchHandler(mockUC.NewMockDispatchUsecase(t), slog.Default())

	for _, raw := range []string{"15", "0", "-10", "abc"} {
		c, _ := newDispatchContext(http.MethodGet, "/send-class-reminders?minutesBefore="+raw, "")

		err := handler.SendClassReminders(c)
		require.Error(t, err, "minutesBefore=%s should be rejected", raw)
	}
}
