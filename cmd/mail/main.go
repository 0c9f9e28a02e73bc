package main

import (
	"context"
	"encoding/gob"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/config"
	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("load config", slog.String("error", err.Error()))
		return
	}

	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("create mail client", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("connect to mail server", slog.String("error", err.Error()))
		return
	}

	// registers mail.Msg with gob; queue bodies themselves are JSON-encoded
	// domain.MailMessage values and are decoded with encoding/json below
	gob.Register(mail.NewMsg())

	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("connect to rabbitmq", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("open channel", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	for _, name := range []string{"email_queue", "delay_notice_queue"} {
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			logger.Error("declare queue", "queue", name, slog.String("error", err.Error()))
			return
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	for _, name := range []string{"email_queue", "delay_notice_queue"} {
		msgs, err := ch.Consume(name, "", false, false, false, false, nil)
		if err != nil {
			logger.Error("consume queue", "queue", name, slog.String("error", err.Error()))
			os.Exit(1)
		}

		wg.Add(1)
		go consume(ctx, &wg, logger, client, cfg.Email.SMTP.Username, msgs)
	}

	logger.Info("waiting for messages (ctrl+c to quit)")
	<-sigChan

	logger.Info("shutting down mail worker")
	cancel()
	wg.Wait()
	logger.Info("mail worker shut down")
}

func consume(ctx context.Context, wg *sync.WaitGroup, logger *slog.Logger, client *mail.Client, from string, msgs <-chan amqp.Delivery) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}

			mailMessage := domain.MailMessage{}
			if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
				logger.Error("unmarshal mail message", slog.String("error", err.Error()))
				_ = msg.Nack(false, false)
				continue
			}

			m := mail.NewMsg()
			if err := m.From(from); err != nil {
				logger.Error("set mail sender", slog.String("error", err.Error()))
				_ = msg.Nack(false, false)
				continue
			}
			if err := m.To(mailMessage.To); err != nil {
				logger.Error("set mail recipient", slog.String("error", err.Error()))
				_ = msg.Nack(false, false)
				continue
			}

			var templateFile, subject string
			switch mailMessage.Type {
			case domain.MailTypeCreateOperator:
				templateFile, subject = "./templates/new_operator_email.html", "Reflow scheduler - operator account created"
			case domain.MailTypeResetPassword:
				templateFile, subject = "./templates/reset_password_otp_email.html", "Reflow scheduler - password reset code"
			case domain.MailTypeDelayNotice:
				templateFile, subject = "./templates/delay_notice_email.html", "Reflow scheduler - work order delayed"
			default:
				logger.Error("unsupported mail type", slog.String("type", mailMessage.Type))
				_ = msg.Nack(false, false)
				continue
			}

			tmpl, err := template.ParseFiles(templateFile)
			if err != nil {
				logger.Error("parse mail template", slog.String("error", err.Error()))
				_ = msg.Nack(false, false)
				continue
			}
			if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
				logger.Error("render mail body", slog.String("error", err.Error()))
				_ = msg.Nack(false, false)
				continue
			}
			m.Subject(subject)

			if err := client.DialAndSend(m); err != nil {
				logger.Error("send mail", slog.String("error", err.Error()))
				_ = msg.Nack(false, true)
				continue
			}

			_ = msg.Ack(false)
		}
	}
}
