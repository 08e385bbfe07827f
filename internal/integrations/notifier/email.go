package notifier

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// MailSender отправка готового письма (*mail.Client)
type MailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// EmailConfig параметры SMTP
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Bcc      string // Копия владельцу площадки, опционально
	NoTLS    bool
}

// EmailDispatcher отправляет подтверждение письмом на email из контакта
type EmailDispatcher struct {
	sender MailSender
	from   string
	bcc    string
	log    Logger
}

// NewEmailDispatcher создает SMTP клиента
func NewEmailDispatcher(cfg EmailConfig, log Logger) (*EmailDispatcher, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, fmt.Errorf("%w: smtp host and from address are required", ErrInvalidConfig)
	}

	opts := []mail.Option{mail.WithPort(cfg.Port)}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	if cfg.NoTLS {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: smtp client: %v", ErrInvalidConfig, err)
	}

	return NewEmailDispatcherWithSender(client, cfg.From, cfg.Bcc, log), nil
}

// NewEmailDispatcherWithSender создает драйвер поверх произвольного отправителя
func NewEmailDispatcherWithSender(sender MailSender, from, bcc string, log Logger) *EmailDispatcher {
	return &EmailDispatcher{sender: sender, from: from, bcc: bcc, log: log}
}

func (d *EmailDispatcher) Name() string {
	return DriverEmail
}

func (d *EmailDispatcher) Dispatch(ctx context.Context, batch *domain.ReservationBatch) error {
	msg, err := d.buildMessage(batch)
	if err != nil {
		return err
	}

	if err := d.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: smtp: %v", ErrDelivery, err)
	}

	d.log.Info("Notification: email sent for batch=%s to %s", batch.ID, batch.Contact.Masked())
	return nil
}

func (d *EmailDispatcher) buildMessage(batch *domain.ReservationBatch) (*mail.Msg, error) {
	if !batch.Contact.IsEmail() {
		return nil, fmt.Errorf("%w: email driver needs an email contact", ErrUnsupportedContact)
	}

	msg := mail.NewMsg()
	if err := msg.From(d.from); err != nil {
		return nil, fmt.Errorf("%w: from address: %v", ErrInvalidConfig, err)
	}
	if err := msg.To(batch.Contact.String()); err != nil {
		return nil, fmt.Errorf("%w: recipient: %v", ErrUnsupportedContact, err)
	}
	if d.bcc != "" {
		if err := msg.Bcc(d.bcc); err != nil {
			return nil, fmt.Errorf("%w: bcc address: %v", ErrInvalidConfig, err)
		}
	}
	msg.Subject(ConfirmationSubject(batch))
	msg.SetBodyString(mail.TypeTextPlain, ConfirmationText(batch))

	return msg, nil
}

func (d *EmailDispatcher) Close() error {
	return nil
}
