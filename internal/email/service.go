package email

import (
	"fmt"
	"time"

	gomail "gopkg.in/gomail.v2"

	"github.com/RiegL/ostia-visitas-report/internal/model"
	"github.com/RiegL/ostia-visitas-report/pkg/circuitbreaker"
)

// Service sends visit notifications to ministers. All sends are
// best-effort: the scheduling flow logs a failure and carries on.
type Service interface {
	SendVisitScheduled(to string, appointment *model.Appointment, patientName string) error
}

type Config struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpService struct {
	dialer  *gomail.Dialer
	from    string
	breaker *circuitbreaker.CircuitBreaker
}

func NewService(cfg Config) Service {
	if !cfg.Enabled {
		return &noopService{}
	}
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		// A dead SMTP server should not add a dial timeout to every
		// scheduling request.
		breaker: circuitbreaker.New(circuitbreaker.Settings{
			Name:        "smtp",
			MaxFailures: 3,
			Cooldown:    time.Minute,
		}),
	}
}

func (s *smtpService) SendVisitScheduled(to string, appointment *model.Appointment, patientName string) error {
	if to == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Visita agendada: %s", patientName))
	m.SetBody("text/plain", fmt.Sprintf(
		"Uma visita foi agendada para %s em %s.\n\nObservações: %s\n",
		patientName,
		appointment.Date.Format("02/01/2006"),
		appointment.Notes,
	))

	err := s.breaker.Execute(func() error {
		return s.dialer.DialAndSend(m)
	})
	if err != nil {
		return fmt.Errorf("failed to send visit notification: %w", err)
	}
	return nil
}

type noopService struct{}

func (n *noopService) SendVisitScheduled(string, *model.Appointment, string) error {
	return nil
}
