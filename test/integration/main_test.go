package integration_test

import (
	"log"
	"os"
	"sync"
	"testing"

	"uniadvisor_backend/test/helpers"
)

// Глобальный сервер: каталог неизменяемый, поэтому один на все тесты
var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer возвращает тестовый сервер (создает при первом вызове)
func GetTestServer(t *testing.T) *helpers.TestServer {
	serverOnce.Do(func() {
		log.Println("--- [GetTestServer] Initializing test server... ---")
		globalTestServer = helpers.NewTestServer(t, helpers.TestCatalog())
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		globalTestServer.Close()
	}

	os.Exit(code)
}
