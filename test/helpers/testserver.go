package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"uniadvisor_backend/internal/app"
	"uniadvisor_backend/internal/catalog"
	"uniadvisor_backend/internal/config"

	"github.com/gin-gonic/gin"
)

// TestServer - HTTP-сервер приложения поверх каталога в памяти
type TestServer struct {
	Server *httptest.Server
	Store  *catalog.Store
}

// TestConfig - конфигурация без базы и брокеров
func TestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Server.CORSOrigins = []string{"*"}
	cfg.Server.ShutdownTimeout = time.Second
	cfg.Database.Driver = "postgres"
	cfg.Catalog.Source = config.SourceSeed
	cfg.Catalog.Mode = config.ModeCached
	return cfg
}

// NewTestServer поднимает сервер над переданным снимком каталога
func NewTestServer(t *testing.T, snap *catalog.Snapshot) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := catalog.NewStaticStore(snap)
	router := app.SetupRouter(TestConfig(), store)

	return &TestServer{
		Server: httptest.NewServer(router),
		Store:  store,
	}
}

// NewTestServerWithProvider - то же, но с произвольным провайдером (live, сломанный источник)
func NewTestServerWithProvider(t *testing.T, provider catalog.Provider) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return httptest.NewServer(app.SetupRouter(TestConfig(), provider))
}

func (ts *TestServer) Close() {
	ts.Server.Close()
}

// SendRequest отправляет JSON-запрос и возвращает ответ и тело строкой
func (ts *TestServer) SendRequest(t *testing.T, method, path string, body interface{}) (*http.Response, string) {
	return SendRequest(t, ts.Server, method, path, body)
}

func SendRequest(t *testing.T, server *httptest.Server, method, path string, body interface{}) (*http.Response, string) {
	t.Helper()
	url := server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}

	return res, string(resBodyBytes)
}

// ParseJSON разбирает тело ответа в map
func ParseJSON(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		t.Fatalf("Не удалось разобрать JSON ответа: %v. Тело: %s", err, body)
	}
	return out
}
