package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"messagemural/internal/config"
	"messagemural/internal/models"
	"messagemural/internal/repository"

	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const previewLength = 60

// inspect prints the configured collection, oldest message first.
func main() {
	author := flag.String("author", "", "Only show messages from this author")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(2)
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)

	ctx := context.Background()
	store, closeStore, err := repository.NewMessageStore(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error while opening store: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	messages, err := store.ListAll(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error while scanning %s: %v\n", cfg.CollectionName, err)
		os.Exit(1)
	}
	if *author != "" {
		messages = lo.Filter(messages, func(m models.Message, _ int) bool {
			return m.Author == *author
		})
	}
	render(os.Stdout, messages)
}

func render(w io.Writer, messages []models.Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp < messages[j].Timestamp
	})

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Created At", "Timestamp", "Author", "Content"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, m := range messages {
		table.Append([]string{
			m.ID,
			m.CreatedAt,
			strconv.FormatInt(m.Timestamp, 10),
			m.Author,
			preview(m.Content),
		})
	}
	table.Render()
	fmt.Fprintf(w, "%d message(s)\n", len(messages))
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength]) + "…"
}
