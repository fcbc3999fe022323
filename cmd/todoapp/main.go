package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/raibhavesh/todo-app-linity/internal/tui"
)

const (
	logDir             = "logs"
	logFileName        = "client.log"
	logFilePermissions = 0666
	// Имя переменной окружения для URL сервера.
	serverURLEnvVar = "TODOAPP_SERVER_URL"
	// Имя переменной окружения для пути к файлу сессии.
	sessionPathEnvVar = "TODOAPP_SESSION_PATH"
	// URL сервера по умолчанию.
	defaultServerURL = "http://localhost:3001"
)

// Переменные для версии и даты сборки, устанавливаются через ldflags.
var (
	version = "dev"
	//nolint:gochecknoglobals // Устанавливается через ldflags при сборке
	buildDate = "unknown"
	//nolint:gochecknoglobals // Устанавливается через ldflags при сборке
	commitHash = "N/A"
)

// setupLogging настраивает логирование в файл logs/client.log.
// TUI занимает терминал, поэтому писать логи в stderr нельзя.
func setupLogging() {
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		// Используем panic, так как без логов продолжать нет смысла
		panic("Не удалось создать директорию для логов: " + err.Error())
	}
	logPath := filepath.Join(logDir, logFileName)
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions)
	if err != nil {
		panic("Не удалось открыть лог-файл: " + err.Error())
	}
	// Файл остается открытым на все время работы приложения,
	// его закроет ОС при завершении процесса.

	logHandler := slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(logHandler))
	slog.Info("Логгер инициализирован", "path", logPath)
}

// defaultSessionPath возвращает путь к файлу сессии по умолчанию
// в пользовательской директории конфигурации.
func defaultSessionPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Нет домашней директории — работаем из текущей.
		return "session.json"
	}
	return filepath.Join(configDir, "todoapp", "session.json")
}

func main() {
	versionFlag := flag.Bool("version", false, "Показать версию и дату сборки")

	setupLogging()

	serverURLFlag := flag.String("server-url", defaultServerURL,
		"URL сервера todo-сервиса (переопределяет "+serverURLEnvVar+")")
	sessionPathFlag := flag.String("session", defaultSessionPath(),
		"Путь к файлу сессии (переопределяет "+sessionPathEnvVar+")")

	flag.Parse()

	if *versionFlag {
		// Используем стандартный log для вывода в консоль, так как slog настроен на файл
		log.SetOutput(os.Stdout)
		log.SetFlags(0)
		log.Println("Todo Client")
		log.Printf("Version: %s", version)
		log.Printf("Build Date: %s", buildDate)
		log.Printf("Commit Hash: %s", commitHash)
		os.Exit(0)
	}

	// Приоритет настроек: явный флаг > переменная окружения > значение по умолчанию.
	serverURL := resolveSetting("server-url", *serverURLFlag, serverURLEnvVar)
	sessionPath := resolveSetting("session", *sessionPathFlag, sessionPathEnvVar)

	if serverURL == "" {
		slog.Error("URL сервера не может быть пустым",
			"проверьте", "флаг -server-url и переменную окружения "+serverURLEnvVar)
		os.Exit(1)
	}
	if sessionPath == "" {
		slog.Error("Путь к файлу сессии не может быть пустым",
			"проверьте", "флаг -session и переменную окружения "+sessionPathEnvVar)
		os.Exit(1)
	}

	slog.Info("Запуск todo-клиента",
		"server_url", serverURL,
		"session_path", sessionPath,
		"version", version,
	)

	tui.Start(serverURL, sessionPath)
}

// resolveSetting выбирает значение настройки: явно установленный флаг
// важнее переменной окружения, переменная окружения важнее значения
// по умолчанию.
func resolveSetting(flagName, flagValue, envVar string) string {
	flagPresent := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == flagName {
			flagPresent = true
		}
	})
	if flagPresent {
		return flagValue
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	return flagValue
}
