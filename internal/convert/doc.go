// Package convert transforms extracted HTML fragments into Markdown.
package convert
