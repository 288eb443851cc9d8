package bmeta

import (
	"fmt"
	"io"
)

const defaultBuildMeta = "N/A" // Значение по умолчанию

// Info метаданные сборки.
type Info struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// New заполняет пустые значения defaultBuildMeta.
func New(version, date, commit string) Info {
	return Info{
		Version: orDefault(version),
		Date:    orDefault(date),
		Commit:  orDefault(commit),
	}
}

// Print Распечатывает версию, дату и комит сборки.
func (i Info) Print(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Build version: %s\n", i.Version)
	_, _ = fmt.Fprintf(w, "Build date: %s\n", i.Date)
	_, _ = fmt.Fprintf(w, "Build commit: %s\n", i.Commit)
}

func orDefault(v string) string {
	if v == "" {
		return defaultBuildMeta
	}
	return v
}
