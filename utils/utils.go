package utils

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"voicedesk.io/accounting/models"
)

var db *sql.DB

// Config reads a configuration value, loading .env first unless disabled.
func Config(key string) string {
	if os.Getenv("USE_DOTENV") != "off" {
		_ = godotenv.Load(".env")
	}
	return os.Getenv(key)
}

// CreateDBConn opens a MySQL connection using DB_* environment variables.
func CreateDBConn() (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true",
		Config("DB_USER"),
		Config("DB_PASS"),
		Config("DB_HOST"),
		Config("DB_NAME"))
	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func GetDBConnection() (*sql.DB, error) {
	if db != nil {
		return db, nil
	}
	var err error
	db, err = CreateDBConn()
	if err != nil {
		return nil, err
	}
	return db, nil
}

// GetSettingsFromAPI fetches export credentials and bucket info from the internal API
func GetSettingsFromAPI() (*models.Settings, error) {
	apiUrl := os.Getenv("API_URL") + "/settings"
	apiKey := os.Getenv("VOICEDESK_KEY")

	req, err := http.NewRequest("GET", apiUrl, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("X-Voicedesk-Api-Token", apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var settings models.Settings
	if err := json.Unmarshal(body, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// FormatMinutesDisplay renders a minute count for the dashboard. Rounding to
// whole minutes happens here and only here; aggregation stays fractional.
func FormatMinutesDisplay(minutes float64) string {
	if minutes == models.UnlimitedMinutes {
		return "Unlimited"
	}
	return fmt.Sprintf("%.0f min", minutes)
}

func LogError(message string, err error) {
	Log(logrus.ErrorLevel, message)
	Log(logrus.ErrorLevel, err.Error())
}
