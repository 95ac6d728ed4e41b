package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/stormhq/storm-admin/gate"
	"github.com/stormhq/storm-admin/internal/policy"
)

// ExportCoupons streams the coupon list as an XLSX attachment. The
// workbook is built in memory from a fresh fetch; nothing lands on disk.
func (h *Handler) ExportCoupons(w http.ResponseWriter, r *http.Request) {
	ident, r, ok := h.requireIdentity(w, r)
	if !ok || !h.requirePermission(w, r, ident, gate.ActionManage, policy.ResourceCoupon) {
		return
	}

	coupons, err := h.api.ListCoupons(r.Context())
	if err != nil {
		redirect(w, r, adminCouponsPath, "err", "load_error")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Cupons"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Código", "Descrição", "Tipo", "Valor", "Ativo", "Válido de", "Válido até", "Usos", "Máx. usos"}
	for i, title := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, title)
	}

	for row, c := range coupons {
		values := []any{
			c.Code,
			c.Description,
			c.DiscountType,
			c.DiscountValue,
			c.IsActive,
			formatDate(c.ValidFrom),
			formatDate(c.ValidUntil),
			intOrBlank(c.CurrentUses),
			intOrBlank(c.MaxUses),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("cupons-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := f.Write(w); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func formatDate(ts *time.Time) string {
	if ts == nil {
		return ""
	}
	return ts.Format("02/01/2006")
}

func intOrBlank(n *int) any {
	if n == nil {
		return ""
	}
	return *n
}
