// Command course-stats prints the localized statistics summary and the
// per-instance chart series for one course and user. Operator aid for
// debugging the dashboard numbers.
//
// Usage:
//
//	course-stats --course=3 --instance=7 --user=12 [--teacher]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/annothub/annotator-backend/internal/adapter/postgres"
	"github.com/annothub/annotator-backend/internal/adapter/postgres/instance"
	"github.com/annothub/annotator-backend/internal/adapter/postgres/report"
	"github.com/annothub/annotator-backend/internal/adapter/postgres/stats"
	"github.com/annothub/annotator-backend/internal/app"
	"github.com/annothub/annotator-backend/internal/config"
	"github.com/annothub/annotator-backend/internal/locale"
	"github.com/annothub/annotator-backend/internal/service/statistics"
)

func main() {
	courseID := flag.Int64("course", 0, "course id")
	instanceID := flag.Int64("instance", 0, "annotator instance id")
	userID := flag.Int64("user", 0, "user id the counts are computed for")
	teacher := flag.Bool("teacher", false, "render the teacher breakdown")
	flag.Parse()

	if *courseID == 0 || *instanceID == 0 || *userID == 0 {
		fmt.Fprintln(os.Stderr, "Usage: course-stats --course=ID --instance=ID --user=ID [--teacher]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Debug("starting course-stats", slog.String("version", app.BuildVersion()))

	translator, err := locale.New(cfg.Locale.Language)
	if err != nil {
		log.Fatalf("load locale: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	svc := statistics.NewService(
		logger,
		statistics.Binding{
			CourseID:   *courseID,
			InstanceID: *instanceID,
			UserID:     *userID,
			IsTeacher:  *teacher,
		},
		stats.New(pool),
		report.New(pool),
		instance.New(pool),
	)

	table, err := svc.SummaryTable(ctx)
	if err != nil {
		log.Fatalf("build summary table: %v", err)
	}

	fmt.Printf("Summary (course %d, instance %d, user %d):\n", *courseID, *instanceID, *userID)
	for _, row := range table {
		fmt.Printf("  %-20s", translator.Resolve(row.Label))
		for _, cell := range row.Cells {
			fmt.Printf("  %8.2f", cell)
		}
		fmt.Println()
	}

	series, err := svc.ChartSeries(ctx)
	if err != nil {
		log.Fatalf("build chart series: %v", err)
	}

	fmt.Println("\nChart series:")
	for i, name := range series.Names {
		fmt.Printf("  %-30s  questions %d (+%d mine)  answers %d (+%d mine)\n",
			name,
			series.OtherQuestions[i], series.MyQuestions[i],
			series.OtherAnswers[i], series.MyAnswers[i],
		)
	}
}
