// Package onboarding implements the assistant provisioning wizard: a
// linear, validated state machine that collects business details and
// creates the voice assistant at the final step.
package onboarding

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"voicedesk.io/accounting/internal/voiceapi"
	"voicedesk.io/accounting/models"
	"voicedesk.io/accounting/repository"
)

type Step int

const (
	StepCompanyInfo Step = iota + 1
	StepBusinessDescription
	StepVoiceAndGreeting
	StepAdditionalDetails
	StepTestAssistant
)

func (s Step) String() string {
	switch s {
	case StepCompanyInfo:
		return "company_info"
	case StepBusinessDescription:
		return "business_description"
	case StepVoiceAndGreeting:
		return "voice_and_greeting"
	case StepAdditionalDetails:
		return "additional_details"
	case StepTestAssistant:
		return "test_assistant"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

var (
	// ErrProvisionInFlight rejects re-entrant provisioning while a prior
	// request is unresolved.
	ErrProvisionInFlight = errors.New("assistant creation already in progress")
	ErrNotReadyToPublish = errors.New("assistant must be created before publishing")
	ErrWizardComplete    = errors.New("wizard already reached the test step")
)

// ValidationError blocks a step transition; Field names the offending
// input so the caller can attach the message to it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FormData is the business information collected across the wizard steps.
type FormData struct {
	CompanyName         string
	PhoneNumber         string
	BusinessDescription string
	TargetCustomers     string
	GreetingPhrase      string
	VoiceId             string
	AdditionalDetails   string
}

// Provisioner creates assistants at the voice provider.
type Provisioner interface {
	CreateAssistant(ctx context.Context, request *voiceapi.CreateAssistantRequest) (*voiceapi.CreateAssistantResponse, error)
}

// Wizard drives one onboarding session. Forward-only under normal
// operation; Prev is allowed from every state except the terminal one.
// Not safe for concurrent use beyond the provisioning guard: each session
// belongs to one logical flow, matching the dashboard's ownership model.
type Wizard struct {
	ID string

	step        Step
	form        FormData
	assistantId string
	published   bool

	provisioning atomic.Bool

	provisioner Provisioner
	assistants  repository.AssistantRepository

	planId     string
	ownerEmail string
}

func NewWizard(provisioner Provisioner, assistants repository.AssistantRepository, planId string, ownerEmail string) *Wizard {
	return &Wizard{
		ID:          uuid.NewString(),
		step:        StepCompanyInfo,
		provisioner: provisioner,
		assistants:  assistants,
		planId:      planId,
		ownerEmail:  ownerEmail,
	}
}

func (w *Wizard) Step() Step {
	return w.step
}

func (w *Wizard) Form() FormData {
	return w.form
}

func (w *Wizard) AssistantId() string {
	return w.assistantId
}

func (w *Wizard) Published() bool {
	return w.published
}

// SetCompanyName also refreshes the greeting phrase, mirroring the
// dashboard behavior where the greeting tracks the company name until the
// user edits it at the voice step.
func (w *Wizard) SetCompanyName(name string) {
	w.form.CompanyName = name
	if name != "" {
		w.form.GreetingPhrase = fmt.Sprintf("It's a great day at %s! How can I help you?", name)
	}
}

func (w *Wizard) SetPhoneNumber(number string)      { w.form.PhoneNumber = number }
func (w *Wizard) SetBusinessDescription(d string)   { w.form.BusinessDescription = d }
func (w *Wizard) SetTargetCustomers(t string)       { w.form.TargetCustomers = t }
func (w *Wizard) SetGreetingPhrase(greeting string) { w.form.GreetingPhrase = greeting }
func (w *Wizard) SetVoiceId(voiceId string)         { w.form.VoiceId = voiceId }
func (w *Wizard) SetAdditionalDetails(d string)     { w.form.AdditionalDetails = d }

// Next validates the current step and advances. The transition out of the
// additional-details step provisions the assistant; on any provisioning
// failure the wizard stays where it is and nothing is persisted.
func (w *Wizard) Next(ctx context.Context) error {
	if w.step == StepTestAssistant {
		return ErrWizardComplete
	}

	if err := w.validateStep(); err != nil {
		return err
	}

	if w.step == StepAdditionalDetails {
		return w.provision(ctx)
	}

	w.step++
	return nil
}

// Prev steps backward. A no-op at the first step and from the terminal
// test step, where going back would orphan the created assistant.
func (w *Wizard) Prev() {
	if w.step == StepTestAssistant || w.step == StepCompanyInfo {
		return
	}
	w.step--
}

// Publish flips the local published flag. There is no remote side effect
// yet; this is the hook for a future fulfillment step.
func (w *Wizard) Publish() error {
	if w.step != StepTestAssistant {
		return ErrNotReadyToPublish
	}
	w.published = true
	return nil
}

func (w *Wizard) validateStep() error {
	switch w.step {
	case StepCompanyInfo:
		if w.form.CompanyName == "" {
			return &ValidationError{Field: "companyName", Message: "Please enter your company name"}
		}
		if w.form.PhoneNumber == "" {
			return &ValidationError{Field: "phoneNumber", Message: "Please enter your phone number"}
		}
	case StepBusinessDescription:
		if w.form.BusinessDescription == "" {
			return &ValidationError{Field: "businessDescription", Message: "Please describe what your business does"}
		}
		if w.form.TargetCustomers == "" {
			return &ValidationError{Field: "targetCustomers", Message: "Please describe your target customers"}
		}
	case StepVoiceAndGreeting:
		if w.form.GreetingPhrase == "" {
			return &ValidationError{Field: "greetingPhrase", Message: "Please enter a greeting phrase"}
		}
		if w.form.VoiceId == "" {
			return &ValidationError{Field: "voiceId", Message: "Please select a voice for your assistant"}
		}
	}
	return nil
}

// SystemPrompt interpolates the collected business data into the fixed
// receptionist prompt template.
func (w *Wizard) SystemPrompt() string {
	return fmt.Sprintf(`You are an AI phone receptionist for %s.
The business phone number is %s.
This business specializes in %s, serving %s.
Please greet callers with the phrase: "%s"
Additional details: %s`,
		w.form.CompanyName,
		w.form.PhoneNumber,
		w.form.BusinessDescription,
		w.form.TargetCustomers,
		w.form.GreetingPhrase,
		w.form.AdditionalDetails)
}

func (w *Wizard) provision(ctx context.Context) error {
	if !w.provisioning.CompareAndSwap(false, true) {
		return ErrProvisionInFlight
	}
	defer w.provisioning.Store(false)

	systemPrompt := w.SystemPrompt()

	request := &voiceapi.CreateAssistantRequest{
		Name:         w.form.CompanyName,
		FirstMessage: w.form.GreetingPhrase,
		Model: voiceapi.ModelConfig{
			Provider:    "openai",
			Model:       "gpt-3.5-turbo",
			Temperature: 0.7,
			Messages: []voiceapi.ModelMessage{
				{Role: "system", Content: systemPrompt},
			},
		},
		Transcriber: voiceapi.TranscriberConfig{
			Provider: "deepgram",
			Model:    "nova-2",
			Language: "en-US",
		},
		Voice: voiceapi.VoiceConfig{
			Provider: "playht",
			VoiceId:  w.form.VoiceId,
		},
	}

	response, err := w.provisioner.CreateAssistant(ctx, request)
	if err != nil {
		return errors.Wrap(err, "creating assistant")
	}

	assistant := &models.Assistant{
		AssistantId:  response.Id,
		Name:         w.form.CompanyName,
		FirstMessage: w.form.GreetingPhrase,
		SystemPrompt: systemPrompt,
		VoiceId:      w.form.VoiceId,
		Language:     "en-US",
		Temperature:  0.7,
		PlanId:       w.planId,
		OwnerEmail:   w.ownerEmail,
	}
	if err := w.assistants.CreateAssistant(assistant); err != nil {
		return errors.Wrap(err, "saving assistant record")
	}

	w.assistantId = response.Id
	w.step = StepTestAssistant
	return nil
}
