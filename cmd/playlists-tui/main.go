package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/maynagashev/playlists/internal/tui"
)

const (
	logDir             = "logs"
	logFileName        = "client.log"
	logFilePermissions = 0666
	// Имя переменной окружения для URL сервера.
	serverURLEnvVar  = "PLAYLISTS_SERVER_URL"
	defaultServerURL = "http://localhost:3000"
)

// Переменные для версии и даты сборки, устанавливаются через ldflags.
var (
	version   = "dev"
	buildDate = "unknown"
)

// setupLogging настраивает логирование в файл logs/client.log.
// Вывод в терминал занят TUI, поэтому логи пишутся только в файл.
func setupLogging() (*os.File, error) {
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		return nil, err
	}
	logPath := filepath.Join(logDir, logFileName)
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions)
	if err != nil {
		return nil, err
	}
	logHandler := slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(logHandler))
	slog.Info("Логгер инициализирован", "path", logPath)
	return logFile, nil
}

// resolveServerURL выбирает URL сервера: флаг, затем переменная окружения, затем значение по умолчанию.
func resolveServerURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(serverURLEnvVar); env != "" {
		return env
	}
	return defaultServerURL
}

func main() {
	versionFlag := flag.Bool("version", false, "Показать версию и дату сборки")
	serverURLFlag := flag.String("server-url", "", "URL сервера плейлистов (переопределяет "+serverURLEnvVar+")")
	flag.Parse()

	if *versionFlag {
		log.SetFlags(0)
		log.SetOutput(os.Stdout)
		log.Printf("Playlists TUI %s (%s)", version, buildDate)
		return
	}

	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Не удалось настроить логирование: %v", err)
	}
	defer logFile.Close()

	serverURL := resolveServerURL(*serverURLFlag)
	slog.Info("Запуск клиента", "server_url", serverURL)

	if err = tui.Start(serverURL); err != nil {
		log.Printf("Ошибка: %v", err)
		os.Exit(1) //nolint:gocritic // файл логов закрывается ОС
	}
}
