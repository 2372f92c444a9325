package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/drawdesk/drawdesk/internal/pkg/config"
	"github.com/drawdesk/drawdesk/internal/pkg/logger"
	"github.com/drawdesk/drawdesk/internal/pkg/models"
	"github.com/drawdesk/drawdesk/internal/pkg/session"
	"github.com/drawdesk/drawdesk/internal/pkg/signal"
	"github.com/drawdesk/drawdesk/services/console/challenge"
	gatewayhttp "github.com/drawdesk/drawdesk/services/console/gateway/http"
	"github.com/drawdesk/drawdesk/services/console/usecase"
)

func main() {
	configPath := flag.String("config", "config/console.env", "path to env config file")
	flag.Parse()

	configs := config.InitConfig(*configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	sess := session.New()
	adminGW := gatewayhttp.NewAdminClient(configs.API.BaseURL, sess,
		time.Duration(configs.API.Timeout)*time.Second)
	adminGW.SetBusyHooks(
		func(label string) { fmt.Fprintf(os.Stderr, "... %s\n", label) },
		func() {},
	)

	widget := challenge.NewWidget(challenge.NewStaticProvider(
		config.GetEnv("CHALLENGE_TOKEN", "dev-challenge-token")))
	defer widget.Close()
	widget.Init(context.Background())

	listRefresh := signal.New()
	headerRefresh := signal.New()

	app := &consoleApp{
		reader:        bufio.NewReader(os.Stdin),
		authFlow:      usecase.NewAuthFlow(adminGW, sess),
		winner:        usecase.NewWinnerDeclaration(adminGW, listRefresh, headerRefresh),
		adminGW:       adminGW,
		widget:        widget,
		listRefresh:   listRefresh,
		headerRefresh: headerRefresh,
	}

	if err := app.run(context.Background()); err != nil {
		zapLogger.Fatal("Console error", logger.Err(err))
	}
}

type consoleApp struct {
	reader        *bufio.Reader
	authFlow      *usecase.AuthFlow
	winner        *usecase.WinnerDeclaration
	adminGW       *gatewayhttp.AdminClient
	widget        *challenge.Widget
	listRefresh   *signal.Flag
	headerRefresh *signal.Flag
}

func (a *consoleApp) prompt(label string) string {
	fmt.Printf("%s: ", label)
	line, _ := a.reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// notify is the single surface every user-action error terminates at
func notify(err error) {
	msg := err.Error()
	if strings.Contains(strings.ToLower(msg), "not found") {
		msg = "Record not found. Please check and try again."
	}
	fmt.Printf("error: %s\n", msg)
}

func (a *consoleApp) run(ctx context.Context) error {
	if err := a.login(ctx); err != nil {
		return err
	}

	for {
		if a.headerRefresh.Consume() {
			a.showCounts(ctx)
		}

		fmt.Println("\n[1] counts  [2] pending  [3] winners  [4] approved  [5] rejected")
		fmt.Println("[6] declare winner  [7] import winners CSV  [8] approve code  [9] add code  [0] logout")
		switch a.prompt("choice") {
		case "1":
			a.showCounts(ctx)
		case "2":
			a.showList(ctx, "pending", a.adminGW.PendingCodes)
		case "3":
			a.listRefresh.Consume()
			a.showList(ctx, "winners", a.adminGW.Winners)
		case "4":
			a.showList(ctx, "approved", a.adminGW.ApprovedUsers)
		case "5":
			a.showList(ctx, "rejected", a.adminGW.RejectedUsers)
		case "6":
			a.declareWinner(ctx)
		case "7":
			a.importWinners(ctx)
		case "8":
			a.approveCode(ctx)
		case "9":
			a.addCode(ctx)
		case "0":
			if err := a.authFlow.Logout(ctx); err != nil {
				notify(err)
			}
			fmt.Println("logged out")
			return nil
		default:
			return nil
		}
	}
}

func (a *consoleApp) login(ctx context.Context) error {
	for a.authFlow.State() != usecase.Authenticated {
		creds := models.Credentials{
			Email:    a.prompt("email"),
			Password: a.prompt("password"),
		}
		// each attempt consumes its own verification token
		if err := a.authFlow.SubmitCredentials(ctx, creds, a.widget.Consume()); err != nil {
			notify(err)
			continue
		}
		fmt.Printf("OTP sent to %s\n", a.authFlow.Email())

		if err := a.authFlow.SubmitOTP(ctx, a.prompt("otp")); err != nil {
			notify(err)
			// Failed verification restarts from the credentials step.
		}
	}
	fmt.Println("login successful")
	return nil
}

func (a *consoleApp) showCounts(ctx context.Context) {
	counts, err := a.adminGW.DashboardCount(ctx)
	if err != nil {
		notify(err)
		return
	}
	fmt.Printf("pending=%d approved=%d rejected=%d winners=%d\n",
		counts.Pending, counts.Approved, counts.Rejected, counts.Winners)
}

func (a *consoleApp) showList(ctx context.Context, name string, fetch func(context.Context) ([]models.UserRow, error)) {
	rows, err := fetch(ctx)
	if err != nil {
		notify(err)
		return
	}
	fmt.Printf("%s (%d rows)\n", name, len(rows))
	for _, row := range rows {
		fmt.Printf("  #%d %s %s %s %s\n", row.UserID, row.Mobile, row.Code, row.Status, row.Date)
	}
}

func (a *consoleApp) declareWinner(ctx context.Context) {
	a.winner.SetMode(usecase.ModeManual)
	a.winner.SetMobile(a.prompt("mobile"))
	a.winner.SetDate(a.prompt(fmt.Sprintf("date (YYYY-MM-DD, latest %s)", usecase.MaxSelectableDate(time.Now()))))

	message, err := a.winner.Submit(ctx)
	if err != nil {
		notify(err)
		return
	}
	fmt.Println(message)
}

func (a *consoleApp) importWinners(ctx context.Context) {
	path := a.prompt("csv path")
	contents, err := os.ReadFile(path)
	if err != nil {
		notify(err)
		return
	}

	a.winner.SetMode(usecase.ModeCSV)
	if err := a.winner.ImportCSV(path, "", string(contents)); err != nil {
		notify(err)
		return
	}
	batch := a.winner.Batch()
	fmt.Printf("parsed %d mobile numbers from %s\n", len(batch.Mobiles), batch.FileName)

	a.winner.SetDate(a.prompt(fmt.Sprintf("date (YYYY-MM-DD, latest %s)", usecase.MaxSelectableDate(time.Now()))))
	message, err := a.winner.Submit(ctx)
	if err != nil {
		notify(err)
		return
	}
	fmt.Println(message)
}

func (a *consoleApp) addCode(ctx context.Context) {
	req := &models.AddCodeRequest{
		Code:   a.prompt("code"),
		Mobile: a.prompt("mobile"),
	}
	message, err := a.adminGW.AddCode(ctx, req)
	if err != nil {
		notify(err)
		return
	}
	fmt.Println(message)
	a.headerRefresh.Raise()
}

func (a *consoleApp) approveCode(ctx context.Context) {
	reasons, err := a.adminGW.ApproveReasons(ctx)
	if err != nil {
		notify(err)
		return
	}
	for _, reason := range reasons {
		fmt.Printf("  [%d] %s\n", reason.ID, reason.Reason)
	}

	message, err := a.adminGW.UpdateCodeStatus(ctx, a.prompt("code"))
	if err != nil {
		notify(err)
		return
	}
	fmt.Println(message)
	a.headerRefresh.Raise()
}
