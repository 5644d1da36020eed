// Package services holds the background jobs run alongside the API.
package services

import (
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/qmshan/blogapi/api/sso"
	"github.com/qmshan/blogapi/api/user"
	"github.com/qmshan/blogapi/config"
	"github.com/qmshan/blogapi/shared/zaplogger"
)

// CronService purges expired handshake records and sessions. Queries
// already filter on expires_at, the sweep keeps the tables from growing.
type CronService struct {
	c        *cron.Cron
	ssoRepo  *sso.Repository
	userRepo *user.Repository
}

func NewCronService(db *gorm.DB) *CronService {
	return &CronService{
		c:        cron.New(),
		ssoRepo:  sso.NewRepository(db),
		userRepo: user.NewRepository(db),
	}
}

func (cs *CronService) Start() {
	zaplogger.Info(config.SingleLine)
	zaplogger.Info("Initializing CronService")

	cs.addScheduledJob("Expired Auth Cleanup Job", cs.expiredAuthCleanupJob, "*/5 * * * *")
	cs.addStartupJob("Expired Auth Cleanup Job", cs.expiredAuthCleanupJob, 5*time.Second)

	cs.c.Start()
}

func (cs *CronService) addScheduledJob(name string, job func(), schedule string) {
	_, err := cs.c.AddFunc(schedule, func() {
		zaplogger.Info("Executing scheduled job", zaplogger.Fields{"job": name})
		job()
	})
	if err != nil {
		zaplogger.Error("Failed to schedule job", zaplogger.Fields{
			"job":   name,
			"error": err.Error(),
		})
		return
	}
	zaplogger.Info("  * Scheduled job added: " + name)
}

func (cs *CronService) addStartupJob(name string, job func(), delay time.Duration) {
	go func() {
		time.Sleep(delay)
		zaplogger.Info("Executing startup job", zaplogger.Fields{"job": name})
		job()
	}()
	zaplogger.Info("  * Startup job queued : " + name)
}

func (cs *CronService) expiredAuthCleanupJob() {
	authSessions, err := cs.ssoRepo.DeleteExpired()
	if err != nil {
		zaplogger.Error("Failed to purge expired auth sessions", zaplogger.Fields{
			"error": err.Error(),
		})
	}

	sessions, err := cs.userRepo.DeleteExpiredSessions()
	if err != nil {
		zaplogger.Error("Failed to purge expired sessions", zaplogger.Fields{
			"error": err.Error(),
		})
	}

	if authSessions > 0 || sessions > 0 {
		zaplogger.Info("Expired auth cleanup done", zaplogger.Fields{
			"auth_sessions": authSessions,
			"sessions":      sessions,
		})
	}
}
