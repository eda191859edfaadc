package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/DjordjeVuckovic/eval-consolidator/internal/aggregate"
)

const (
	criteriaSheet = "Critérios"
	itemsSheet    = "Itens"
)

// WriteXLSX exports the criterion table and the qualitative items as a workbook.
func WriteXLSX(r *aggregate.Result, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", criteriaSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	if err := writeCriteriaSheet(f, r); err != nil {
		return err
	}
	if err := writeItemsSheet(f, r); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeCriteriaSheet(f *excelize.File, r *aggregate.Result) error {
	rows := [][]any{
		{"Critério Avaliado", "n (amostra)", "Cobertura", "Média", "Mín", "Máx", "Desvio Padrão"},
	}
	for _, cs := range r.OrderedStats() {
		rows = append(rows, []any{
			cs.Name,
			cs.N,
			fmt.Sprintf("%d/%d", cs.N, r.TotalReports),
			cs.Mean,
			cs.Min,
			cs.Max,
			cellValue(cs.Stdev),
		})
	}

	rows = append(rows,
		[]any{},
		[]any{"Global (média das médias por critério)", cellValue(r.OverallScore)},
		[]any{"Global (média das 'Pontuações Gerais' reportadas)", cellValue(r.OverallScoreFromReports)},
		[]any{"Avaliações", r.TotalReports},
	)

	return writeRows(f, criteriaSheet, rows)
}

func writeItemsSheet(f *excelize.File, r *aggregate.Result) error {
	rows := [][]any{{"Tipo", "Texto", "Ocorrências"}}
	for _, it := range r.CommonPositives {
		rows = append(rows, []any{"Positivo", it.Text, it.Count})
	}
	for _, it := range r.CommonProblems {
		rows = append(rows, []any{"Problema", it.Text, it.Count})
	}
	for _, p := range r.Priorities {
		rows = append(rows, []any{"Prioridade", p})
	}
	for _, a := range r.Alerts {
		rows = append(rows, []any{"Alerta", a.Criterion, a.Stdev})
	}

	return writeRows(f, itemsSheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func cellValue(v *float64) any {
	if v == nil {
		return absent
	}
	return *v
}
