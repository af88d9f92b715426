package scheduler

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/lawdesk/legal-practice-api/databases"
	"github.com/lawdesk/legal-practice-api/deadlines"
	"github.com/lawdesk/legal-practice-api/models"
	templates "github.com/lawdesk/legal-practice-api/templates/html"
)

// Scheduler handles periodic background jobs for the practice
type Scheduler struct {
	cron       *cron.Cron
	HDB        databases.HearingDatabase
	DDB        databases.DeadlineDatabase
	CDB        databases.CaseDatabase
	CoDB       databases.CourtDatabase
	UDB        databases.UserDatabase
	LockDB     databases.SchedulerLockDatabase
	instanceID string
}

// NewScheduler creates a new scheduler instance
func NewScheduler(
	hDB databases.HearingDatabase,
	dDB databases.DeadlineDatabase,
	cDB databases.CaseDatabase,
	coDB databases.CourtDatabase,
	uDB databases.UserDatabase,
	lockDB databases.SchedulerLockDatabase,
) *Scheduler {
	// Generate a unique instance ID for this pod
	instanceID := os.Getenv("DYNO") // Heroku sets this to "web.1", "web.2", etc.
	if instanceID == "" {
		instanceID = fmt.Sprintf("instance-%d", time.Now().UnixNano())
	}

	return &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		HDB:        hDB,
		DDB:        dDB,
		CDB:        cDB,
		CoDB:       coDB,
		UDB:        uDB,
		LockDB:     lockDB,
		instanceID: instanceID,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Send hearing reminders for tomorrow's cause list daily at 6 AM UTC
	_, err := s.cron.AddFunc("0 6 * * *", s.sendHearingReminders)
	if err != nil {
		zap.S().Errorw("failed to register hearing reminder job", "error", err)
	}

	// Escalate red-zone statutory deadlines daily at 5 AM UTC
	_, err = s.cron.AddFunc("0 5 * * *", s.escalateDeadlines)
	if err != nil {
		zap.S().Errorw("failed to register deadline escalation job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Practice scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Practice scheduler stopped")
}

// sendHearingReminders emails each lawyer about hearings they have tomorrow
func (s *Scheduler) sendHearingReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// Try to acquire distributed lock (10 minute TTL)
	acquired, err := s.LockDB.TryAcquireLock(ctx, "hearing_reminder_job", s.instanceID, 10*time.Minute)
	if err != nil {
		zap.S().Errorw("failed to acquire lock for hearing reminder job", "error", err)
		return
	}
	if !acquired {
		zap.S().Debug("Hearing reminder job already running on another instance, skipping")
		return
	}
	defer s.LockDB.ReleaseLock(ctx, "hearing_reminder_job", s.instanceID)

	tomorrow := time.Now().UTC().Add(24 * time.Hour).Format(deadlines.DateLayout)

	zap.S().Infow("Running hearing reminder job", "instance", s.instanceID, "date", tomorrow)

	hearings, err := s.HDB.Find(ctx, bson.M{
		"hearing.date":   tomorrow,
		"hearing.status": "scheduled",
	})
	if err != nil {
		zap.S().Errorw("failed to find tomorrow's hearings", "error", err)
		return
	}

	sent := 0
	for _, hearing := range hearings {
		if s.sendHearingReminder(ctx, hearing) {
			sent++
		}
	}

	zap.S().Infow("Hearing reminder job complete",
		"hearingsFound", len(hearings),
		"remindersSent", sent,
	)
}

func (s *Scheduler) sendHearingReminder(ctx context.Context, hearing models.Hearing) bool {
	email, name := s.getUserEmail(ctx, hearing.Details.LawyerID)
	if email == "" {
		return false
	}

	caseNumber := s.getCaseNumber(ctx, hearing.Details.CaseID)
	courtName := s.getCourtName(ctx, hearing.Details.CourtID)

	subject := "Hearing Tomorrow: " + hearing.Details.Title + " - LawDesk"
	htmlContent := templates.RenderHearingReminderEmail(
		name, hearing.Details.Title, caseNumber, courtName,
		hearing.Details.Date, hearing.Details.StartTime,
	)
	plainText := fmt.Sprintf("Reminder: %s (%s) at %s on %s, %s.",
		hearing.Details.Title, caseNumber, courtName,
		hearing.Details.Date, hearing.Details.StartTime)

	if err := s.sendEmail(email, name, subject, htmlContent, plainText); err != nil {
		zap.S().Errorw("failed to send hearing reminder", "error", err, "hearingId", hearing.ID.Hex())
		return false
	}
	return true
}

// escalateDeadlines emails assignees for open deadlines in the red zone
// that have not been escalated before
func (s *Scheduler) escalateDeadlines() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// Try to acquire distributed lock (10 minute TTL)
	acquired, err := s.LockDB.TryAcquireLock(ctx, "deadline_escalation_job", s.instanceID, 10*time.Minute)
	if err != nil {
		zap.S().Errorw("failed to acquire lock for deadline escalation job", "error", err)
		return
	}
	if !acquired {
		zap.S().Debug("Deadline escalation job already running on another instance, skipping")
		return
	}
	defer s.LockDB.ReleaseLock(ctx, "deadline_escalation_job", s.instanceID)

	zap.S().Infow("Running deadline escalation job", "instance", s.instanceID)

	open, err := s.DDB.Find(ctx, bson.M{"deadline.status": "open"})
	if err != nil {
		zap.S().Errorw("failed to find open deadlines", "error", err)
		return
	}

	now := time.Now()
	escalated := 0
	for _, deadline := range open {
		if deadline.Details.EscalatedAt != 0 {
			continue
		}
		if deadlines.Classify(deadline.Details.DueDate, now) != deadlines.RAGRed {
			continue
		}
		if s.escalateDeadline(ctx, deadline, now) {
			escalated++
		}
	}

	zap.S().Infow("Deadline escalation job complete",
		"openDeadlines", len(open),
		"escalated", escalated,
	)
}

func (s *Scheduler) escalateDeadline(ctx context.Context, deadline models.Deadline, now time.Time) bool {
	email, name := s.getUserEmail(ctx, deadline.Details.AssigneeID)
	if email == "" {
		return false
	}

	caseNumber := s.getCaseNumber(ctx, deadline.Details.CaseID)
	remaining, err := deadlines.DaysRemaining(deadline.Details.DueDate, now)
	if err != nil {
		remaining = 0
	}

	subject := "Urgent Deadline: " + deadline.Details.Title + " - LawDesk"
	htmlContent := templates.RenderDeadlineEscalationEmail(
		name, deadline.Details.Title, caseNumber, deadline.Details.DueDate, remaining,
	)
	plainText := fmt.Sprintf("Urgent: %s (%s) is due %s.",
		deadline.Details.Title, caseNumber, deadline.Details.DueDate)

	if err := s.sendEmail(email, name, subject, htmlContent, plainText); err != nil {
		zap.S().Errorw("failed to send deadline escalation", "error", err, "deadlineId", deadline.ID.Hex())
		return false
	}

	err = s.DDB.UpdateOne(ctx, bson.M{"_id": deadline.ID}, bson.M{
		"$set": bson.M{
			"deadline.escalatedAt": primitive.NewDateTimeFromTime(now),
			"deadline.updatedAt":   primitive.NewDateTimeFromTime(now),
		},
	})
	if err != nil {
		zap.S().Errorw("failed to mark deadline escalated", "error", err, "deadlineId", deadline.ID.Hex())
	}
	return true
}

// --- Email Helper Functions ---

func (s *Scheduler) sendEmail(toEmail, toName, subject, htmlContent, plainText string) error {
	from := mail.NewEmail("LawDesk", "no-reply@lawdesk.app")
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)
	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
	}
	return nil
}

func (s *Scheduler) getUserEmail(ctx context.Context, userID string) (email, name string) {
	uID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return "", ""
	}
	user, err := s.UDB.FindOne(ctx, bson.M{"_id": uID})
	if err != nil || user.Details.Email == "" {
		return "", ""
	}
	return user.Details.Email, user.Details.Name
}

func (s *Scheduler) getCaseNumber(ctx context.Context, caseID string) string {
	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return ""
	}
	c, err := s.CDB.FindOne(ctx, bson.M{"_id": cID})
	if err != nil {
		return ""
	}
	return c.Details.CaseNumber
}

func (s *Scheduler) getCourtName(ctx context.Context, courtID string) string {
	cID, err := primitive.ObjectIDFromHex(courtID)
	if err != nil {
		return ""
	}
	court, err := s.CoDB.FindOne(ctx, bson.M{"_id": cID})
	if err != nil {
		return ""
	}
	return court.Details.Name
}
