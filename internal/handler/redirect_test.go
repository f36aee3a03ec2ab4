package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"lariat/internal/mocks"
	"lariat/internal/model"
	"lariat/internal/mq"
	"lariat/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRedirectRouter(h *RedirectHandler) *gin.Engine {
	router := gin.New()
	router.GET("/:shortCode", h.RedirectLink)
	router.GET("/qr/:id", h.RedirectQR)
	return router
}

func TestNewRedirectHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRedirectHandler(
		mocks.NewMockLinkServiceInterface(ctrl),
		mocks.NewMockQRCodeServiceInterface(ctrl),
		mocks.NewMockRecorderInterface(ctrl),
		nil,
	)

	assert.NotNil(t, handler)
}

func TestRedirectHandler_RedirectLink(t *testing.T) {
	t.Run("successful redirect keeps query and fragment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinks := mocks.NewMockLinkServiceInterface(ctrl)
		mockRecorder := mocks.NewMockRecorderInterface(ctrl)

		handler := NewRedirectHandler(mockLinks, mocks.NewMockQRCodeServiceInterface(ctrl), mockRecorder, nil)
		router := newTestRedirectRouter(handler)

		destination := "https://example.com/path?q=1&x=2#section"

		mockLinks.EXPECT().Resolve(gomock.Any(), "abc123").Return(&model.CachedTarget{
			ID:          "l-1",
			OriginalURL: destination,
		}, nil)
		// Recording happens off the response path.
		mockRecorder.EXPECT().Record(gomock.Any(), model.TargetLink, "l-1", gomock.Any()).Return(nil).AnyTimes()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/abc123", nil)
		router.ServeHTTP(w, req)

		time.Sleep(50 * time.Millisecond)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, destination, w.Header().Get("Location"))
	})

	t.Run("recording failure does not affect the redirect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinks := mocks.NewMockLinkServiceInterface(ctrl)
		mockRecorder := mocks.NewMockRecorderInterface(ctrl)

		handler := NewRedirectHandler(mockLinks, mocks.NewMockQRCodeServiceInterface(ctrl), mockRecorder, nil)
		router := newTestRedirectRouter(handler)

		mockLinks.EXPECT().Resolve(gomock.Any(), "abc123").Return(&model.CachedTarget{
			ID:          "l-1",
			OriginalURL: "https://example.com",
		}, nil)
		mockRecorder.EXPECT().Record(gomock.Any(), model.TargetLink, "l-1", gomock.Any()).
			Return(errors.New("db down")).AnyTimes()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/abc123", nil)
		router.ServeHTTP(w, req)

		time.Sleep(50 * time.Millisecond)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://example.com", w.Header().Get("Location"))
	})

	t.Run("recorder panic still redirects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinks := mocks.NewMockLinkServiceInterface(ctrl)
		mockRecorder := mocks.NewMockRecorderInterface(ctrl)

		handler := NewRedirectHandler(mockLinks, mocks.NewMockQRCodeServiceInterface(ctrl), mockRecorder, nil)
		router := newTestRedirectRouter(handler)

		mockLinks.EXPECT().Resolve(gomock.Any(), "abc123").Return(&model.CachedTarget{
			ID:          "l-1",
			OriginalURL: "https://example.com",
		}, nil)
		mockRecorder.EXPECT().Record(gomock.Any(), model.TargetLink, "l-1", gomock.Any()).
			DoAndReturn(func(_, _, _, _ interface{}) error {
				panic("recorder blew up")
			}).AnyTimes()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/abc123", nil)
		router.ServeHTTP(w, req)

		time.Sleep(50 * time.Millisecond)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://example.com", w.Header().Get("Location"))
	})

	t.Run("malformed code short-circuits to not-found fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// No Resolve expectation: the lookup must not happen.
		mockLinks := mocks.NewMockLinkServiceInterface(ctrl)

		handler := NewRedirectHandler(mockLinks, mocks.NewMockQRCodeServiceInterface(ctrl), mocks.NewMockRecorderInterface(ctrl), nil)
		router := newTestRedirectRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/too-long-to-be-a-code", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, fallbackNotFound, w.Header().Get("Location"))
	})

	t.Run("unknown code redirects to not-found fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinks := mocks.NewMockLinkServiceInterface(ctrl)
		mockLinks.EXPECT().Resolve(gomock.Any(), "zzzzzz").Return(nil, service.ErrLinkNotFound)

		handler := NewRedirectHandler(mockLinks, mocks.NewMockQRCodeServiceInterface(ctrl), mocks.NewMockRecorderInterface(ctrl), nil)
		router := newTestRedirectRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/zzzzzz", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, fallbackNotFound, w.Header().Get("Location"))
	})

	t.Run("resolve failure redirects to server-error fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinks := mocks.NewMockLinkServiceInterface(ctrl)
		mockLinks.EXPECT().Resolve(gomock.Any(), "abc123").Return(nil, errors.New("mysql down"))

		handler := NewRedirectHandler(mockLinks, mocks.NewMockQRCodeServiceInterface(ctrl), mocks.NewMockRecorderInterface(ctrl), nil)
		router := newTestRedirectRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/abc123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, fallbackServerError, w.Header().Get("Location"))
	})

	t.Run("producer takes precedence over direct recording", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinks := mocks.NewMockLinkServiceInterface(ctrl)
		mockProducer := mocks.NewMockProducerInterface(ctrl)
		// The recorder must not be touched when a producer is wired.
		mockRecorder := mocks.NewMockRecorderInterface(ctrl)

		handler := NewRedirectHandler(mockLinks, mocks.NewMockQRCodeServiceInterface(ctrl), mockRecorder, mockProducer)
		router := newTestRedirectRouter(handler)

		mockLinks.EXPECT().Resolve(gomock.Any(), "abc123").Return(&model.CachedTarget{
			ID:          "l-1",
			OriginalURL: "https://example.com",
		}, nil)

		sent := make(chan *mq.ClickMessage, 1)
		mockProducer.EXPECT().SendClick(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, msg *mq.ClickMessage) error {
				sent <- msg
				return nil
			})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/abc123", nil)
		req.Header.Set("User-Agent", "test-agent")
		req.Header.Set("Referer", "https://google.com")
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)

		select {
		case msg := <-sent:
			assert.Equal(t, model.TargetLink, msg.TargetKind)
			assert.Equal(t, "l-1", msg.TargetID)
			assert.Equal(t, "203.0.113.9", msg.IPAddress)
			assert.Equal(t, "test-agent", msg.UserAgent)
			assert.Equal(t, "https://google.com", msg.Referrer)
			assert.False(t, msg.AccessTime.IsZero())
		case <-time.After(time.Second):
			t.Fatal("click message was not produced")
		}
	})
}

func TestRedirectHandler_RedirectQR(t *testing.T) {
	t.Run("successful scan redirect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQR := mocks.NewMockQRCodeServiceInterface(ctrl)
		mockRecorder := mocks.NewMockRecorderInterface(ctrl)

		handler := NewRedirectHandler(mocks.NewMockLinkServiceInterface(ctrl), mockQR, mockRecorder, nil)
		router := newTestRedirectRouter(handler)

		mockQR.EXPECT().Resolve(gomock.Any(), "q-1").Return(&model.CachedTarget{
			ID:          "q-1",
			OriginalURL: "https://example.com/menu",
		}, nil)
		mockRecorder.EXPECT().Record(gomock.Any(), model.TargetQRCode, "q-1", gomock.Any()).Return(nil).AnyTimes()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/qr/q-1", nil)
		router.ServeHTTP(w, req)

		time.Sleep(50 * time.Millisecond)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://example.com/menu", w.Header().Get("Location"))
	})

	t.Run("unknown qr code redirects to not-found fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQR := mocks.NewMockQRCodeServiceInterface(ctrl)
		mockQR.EXPECT().Resolve(gomock.Any(), "missing").Return(nil, service.ErrQRCodeNotFound)

		handler := NewRedirectHandler(mocks.NewMockLinkServiceInterface(ctrl), mockQR, mocks.NewMockRecorderInterface(ctrl), nil)
		router := newTestRedirectRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/qr/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, fallbackNotFound, w.Header().Get("Location"))
	})

	t.Run("resolve failure redirects to server-error fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQR := mocks.NewMockQRCodeServiceInterface(ctrl)
		mockQR.EXPECT().Resolve(gomock.Any(), "q-1").Return(nil, errors.New("mysql down"))

		handler := NewRedirectHandler(mocks.NewMockLinkServiceInterface(ctrl), mockQR, mocks.NewMockRecorderInterface(ctrl), nil)
		router := newTestRedirectRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/qr/q-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, fallbackServerError, w.Header().Get("Location"))
	})
}
