package repository

import (
	"database/sql"

	"github.com/pkg/errors"

	"voicedesk.io/accounting/models"
)

type AssistantRepository interface {
	CreateAssistant(assistant *models.Assistant) error
	GetAssistant(id int) (*models.Assistant, error)
	GetAssistantByProviderId(assistantId string) (*models.Assistant, error)
	ListAssistants() ([]models.Assistant, error)
	SetPublished(assistantId string, published bool) error
}

type AssistantService struct {
	db *sql.DB
}

func NewAssistantRepository(db *sql.DB) AssistantRepository {
	return NewAssistantService(db)
}

func NewAssistantService(db *sql.DB) *AssistantService {
	return &AssistantService{
		db: db,
	}
}

const assistantColumns = "id, assistant_id, name, first_message, system_prompt, voice_id, language, temperature, plan_id, owner_email, published"

func (as *AssistantService) CreateAssistant(assistant *models.Assistant) error {
	stmt, err := as.db.Prepare("INSERT INTO assistants (`assistant_id`, `name`, `first_message`, `system_prompt`, `voice_id`, `language`, `temperature`, `plan_id`, `owner_email`, `published`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return errors.Wrap(err, "preparing assistant insert")
	}
	defer stmt.Close()

	res, err := stmt.Exec(
		assistant.AssistantId,
		assistant.Name,
		assistant.FirstMessage,
		assistant.SystemPrompt,
		assistant.VoiceId,
		assistant.Language,
		assistant.Temperature,
		assistant.PlanId,
		assistant.OwnerEmail,
		assistant.Published)
	if err != nil {
		return errors.Wrap(err, "inserting assistant")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "reading assistant insert id")
	}
	assistant.Id = int(id)
	return nil
}

func (as *AssistantService) GetAssistant(id int) (*models.Assistant, error) {
	row := as.db.QueryRow("SELECT "+assistantColumns+" FROM assistants WHERE id = ?", id)
	return scanAssistant(row)
}

func (as *AssistantService) GetAssistantByProviderId(assistantId string) (*models.Assistant, error) {
	row := as.db.QueryRow("SELECT "+assistantColumns+" FROM assistants WHERE assistant_id = ?", assistantId)
	return scanAssistant(row)
}

func (as *AssistantService) ListAssistants() ([]models.Assistant, error) {
	rows, err := as.db.Query("SELECT " + assistantColumns + " FROM assistants")
	if err != nil {
		return nil, errors.Wrap(err, "listing assistants")
	}
	defer rows.Close()

	var assistants []models.Assistant
	for rows.Next() {
		var a models.Assistant
		err := rows.Scan(&a.Id, &a.AssistantId, &a.Name, &a.FirstMessage, &a.SystemPrompt,
			&a.VoiceId, &a.Language, &a.Temperature, &a.PlanId, &a.OwnerEmail, &a.Published)
		if err != nil {
			return nil, errors.Wrap(err, "scanning assistant row")
		}
		assistants = append(assistants, a)
	}
	return assistants, rows.Err()
}

func (as *AssistantService) SetPublished(assistantId string, published bool) error {
	_, err := as.db.Exec("UPDATE assistants SET published = ? WHERE assistant_id = ?", published, assistantId)
	return errors.Wrap(err, "updating published flag")
}

func scanAssistant(row *sql.Row) (*models.Assistant, error) {
	var a models.Assistant
	err := row.Scan(&a.Id, &a.AssistantId, &a.Name, &a.FirstMessage, &a.SystemPrompt,
		&a.VoiceId, &a.Language, &a.Temperature, &a.PlanId, &a.OwnerEmail, &a.Published)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
