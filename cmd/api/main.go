package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "lendbook-backend/internal/adapter/http"
	mw "lendbook-backend/internal/adapter/middleware"
	"lendbook-backend/internal/adapter/repository/mysql"
	"lendbook-backend/internal/config"
	"lendbook-backend/internal/domain/contact"
	"lendbook-backend/internal/domain/expense"
	"lendbook-backend/internal/domain/loan"
	"lendbook-backend/internal/domain/payment"
	"lendbook-backend/internal/domain/user"
	"lendbook-backend/internal/events"
	"lendbook-backend/internal/infrastructure/cache"
	"lendbook-backend/internal/infrastructure/db"
	"lendbook-backend/internal/notify"
	contactuc "lendbook-backend/internal/usecase/contact"
	expenseuc "lendbook-backend/internal/usecase/expense"
	loanuc "lendbook-backend/internal/usecase/loan"
	paymentuc "lendbook-backend/internal/usecase/payment"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(
		&user.User{},
		&contact.Contact{},
		&loan.Loan{},
		&payment.Payment{},
		&expense.Expense{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	var notifier notify.Notifier = notify.LogNotifier{}
	if m := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.EmailFrom); m.Configured() {
		notifier = m
	} else {
		log.Printf("smtp not configured, notifications go to the log")
	}
	sink := events.NewPublisher(rdb)

	loans := mysql.NewLoanRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	users := mysql.NewUserRepository(gdb)
	contacts := mysql.NewContactRepository(gdb)
	expenses := mysql.NewExpenseRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	loanUC := loanuc.NewUsecase(loans, payments, users, contacts, unit, notifier, sink, cfg.AppURL)
	paymentUC := paymentuc.NewUsecase(loans, payments, users, unit, notifier, sink)
	contactUC := contactuc.NewUsecase(contacts)
	expenseUC := expenseuc.NewUsecase(expenses)

	h := httpadp.NewHandler()
	lh := httpadp.NewLoanHandler(loanUC)
	ph := httpadp.NewPaymentHandler(paymentUC)
	ch := httpadp.NewContactHandler(contactUC)
	xh := httpadp.NewExpenseHandler(expenseUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	idemp := mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)

	e.GET("/loans", lh.ListLoans)
	e.POST("/loans", lh.CreateLoan, idemp)
	e.GET("/loans/:loan_id", lh.GetLoan)
	e.DELETE("/loans/:loan_id", lh.DeleteLoan, idemp)
	e.POST("/loans/:loan_id/accept", lh.AcceptLoan, idemp)
	e.POST("/loans/:loan_id/reject", lh.RejectLoan, idemp)
	e.POST("/loans/:loan_id/return", lh.ReturnLoan, idemp)

	e.GET("/loans/:loan_id/payments", ph.ListPayments)
	e.POST("/loans/:loan_id/payments", ph.SubmitPayment, idemp)
	e.POST("/loans/:loan_id/payments/:payment_id/confirm", ph.ConfirmPayment, idemp)
	e.POST("/loans/:loan_id/payments/:payment_id/reject", ph.RejectPayment, idemp)

	e.GET("/invitations/:token", lh.ResolveInvitation)

	e.GET("/contacts", ch.ListContacts)
	e.POST("/contacts", ch.CreateContact, idemp)
	e.PUT("/contacts/:email", ch.UpdateContact, idemp)
	e.DELETE("/contacts/:email", ch.DeleteContact, idemp)

	e.GET("/expenses", xh.ListExpenses)
	e.POST("/expenses", xh.CreateExpense, idemp)
	e.PUT("/expenses/:expense_id", xh.UpdateExpense, idemp)
	e.DELETE("/expenses/:expense_id", xh.DeleteExpense, idemp)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
