// Package export формирует выгрузки таблиц дашборда в Excel.
package export

import (
	"fmt"
	"io"
	"log"

	"github.com/xuri/excelize/v2"

	"marketing/internal/constants"
	"marketing/internal/models"
	"marketing/internal/utils"
)

// Названия листов выгрузок.
const (
	SheetClients   = "Клиенты"
	SheetServices  = "Услуги"
	SheetOrders    = "Заявки"
	SheetCampaigns = "Реклама"
)

// workbook создает книгу с одним листом sheetName и строкой заголовков.
func workbook(sheetName string, headers []string) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		_ = f.Close()
		return nil, err
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return f, nil
}

// writeRows заполняет строки начиная со второй и записывает книгу в w.
func writeRows(w io.Writer, sheetName string, headers []string, rows [][]any) error {
	f, err := workbook(sheetName, headers)
	if err != nil {
		return fmt.Errorf("ошибка создания книги Excel: %w", err)
	}
	defer f.Close()

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			log.Printf("export: ошибка записи строки %d на лист %s: %v", i+2, sheetName, err)
			return fmt.Errorf("ошибка записи строки Excel: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("ошибка записи файла Excel: %w", err)
	}
	return nil
}

// WriteClients выгружает список клиентов.
func WriteClients(w io.Writer, clients []models.Client) error {
	rows := make([][]any, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []any{
			c.ID, c.Name, c.Email, c.Category, c.Region,
			utils.FormatYesNo(c.IsRepeatClient), c.Source, utils.FormatYesNo(c.IsReferral), c.AdChannel,
		})
	}
	return writeRows(w, SheetClients, constants.ClientHeaders, rows)
}

// WriteServices выгружает каталог услуг. Стоимость остается текстом, как в каталоге.
func WriteServices(w io.Writer, services []models.Service) error {
	rows := make([][]any, 0, len(services))
	for _, s := range services {
		rows = append(rows, []any{s.ID, s.Title, s.Price})
	}
	return writeRows(w, SheetServices, constants.ServiceHeaders, rows)
}

// WriteOrders выгружает список заявок.
func WriteOrders(w io.Writer, orders []models.OrderView) error {
	rows := make([][]any, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []any{
			o.ID, o.ClientName, o.ServiceTitle, o.Date,
			o.DiscountApplied, o.FinalPrice, utils.FormatYesNo(o.IsCompleted),
		})
	}
	return writeRows(w, SheetOrders, constants.OrderHeaders, rows)
}

// WriteCampaigns выгружает сводку по кампаниям.
// Неконечная эффективность записывается текстом ("∞", "—"), так как Excel не хранит Inf и NaN.
func WriteCampaigns(w io.Writer, stats []models.AdStat) error {
	rows := make([][]any, 0, len(stats))
	for _, s := range stats {
		var efficiency any = float64(s.Efficiency)
		if !s.Efficiency.IsFinite() {
			efficiency = s.Efficiency.String()
		}
		rows = append(rows, []any{s.Channel, s.Spend, s.Revenue, s.Date, efficiency})
	}
	return writeRows(w, SheetCampaigns, constants.CampaignHeaders, rows)
}
