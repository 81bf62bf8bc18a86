// Package renderer turns pipeline reports into markdown.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/smadan/folionews"
)

// Dashboard renders the full portfolio dashboard: one summary table of all
// holdings, then one news section per holding.
func Dashboard(reports []*folionews.SymbolReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Dashboard")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Qty", "Avg", "Last", "Day", "Week", "Month", "P/E", "EPS"},
	}
	for _, r := range reports {
		table.Rows = append(table.Rows, []string{
			r.Symbol,
			r.Quantity.String(),
			r.AvgPrice.String(),
			lastPrice(r),
			changeCell(r, r.Price.Day),
			changeCell(r, r.Price.Week),
			changeCell(r, r.Price.Month),
			ratio(r.Stats.PERatio),
			ratio(r.Stats.EPS),
		})
	}
	doc.Table(table)

	for _, r := range reports {
		doc.H2(newsTitle(r))
		doc.PlainText(newsSection(r))
	}

	return doc.String()
}

// News renders the news section of a single holding.
func News(r *folionews.SymbolReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(newsTitle(r))
	doc.PlainText(newsSection(r))
	return doc.String()
}

// Headlines renders a flat list of general news articles.
func Headlines(articles []folionews.Article) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Top Headlines")
	var items []string
	for _, a := range articles {
		items = append(items, headline(a))
	}
	if len(items) == 0 {
		doc.PlainText("No headlines right now.")
	} else {
		doc.BulletList(items...)
	}
	return doc.String()
}

func newsTitle(r *folionews.SymbolReport) string {
	title := r.Name
	if title == "" {
		title = r.Symbol
	}
	if r.StaleNews {
		title += " (stale news)"
	}
	return title
}

func newsSection(r *folionews.SymbolReport) string {
	if len(r.Articles) == 0 {
		return "No relevant news.\n"
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	var items []string
	for _, a := range r.Articles {
		items = append(items, article(a))
	}
	doc.BulletList(items...)
	return doc.String()
}

func article(a folionews.Article) string {
	item := fmt.Sprintf("%s [%s](%s)", sentimentMark(a.Sentiment), a.Title, a.URL)
	if a.Source != "" {
		item += " — " + a.Source
	}
	return item
}

func headline(a folionews.Article) string {
	item := fmt.Sprintf("[%s](%s)", a.Title, a.URL)
	if a.Source != "" {
		item += " — " + a.Source
	}
	return item
}

// sentimentMark formats a sentiment score as a compact signed tag.
func sentimentMark(sentiment *float64) string {
	if sentiment == nil {
		return "`  ?  `"
	}
	return fmt.Sprintf("`%+.2f`", *sentiment)
}

func lastPrice(r *folionews.SymbolReport) string {
	if !r.Price.Valid {
		return "-"
	}
	return r.LastPrice.String()
}

func changeCell(r *folionews.SymbolReport, p folionews.Percent) string {
	if !r.Price.Valid {
		return "-"
	}
	return p.SignedString()
}

func ratio(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}
