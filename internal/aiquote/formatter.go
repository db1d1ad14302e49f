package aiquote

import (
	"fmt"
	"strconv"
	"strings"

	quotedomain "github.com/harborline/seaquote/internal/quote/domain"
)

const dateLayout = "2006-01-02"

// FormatResult renders a resolved quote as display text.
func FormatResult(r *quotedomain.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "根據您的詢問，我找到了從 %s 到 %s 的 %s 運費報價：\n",
		r.OriginPort.Name, r.DestinationPort.Name, r.ContainerType.Name)
	fmt.Fprintf(&b, "基本運費：%s %s\n", formatPrice(r.Rate.Price), r.Rate.Currency)
	fmt.Fprintf(&b, "航程時間：%d 天\n", r.Route.TransitTime)
	fmt.Fprintf(&b, "生效日期：%s\n", r.Rate.EffectiveDate.Format(dateLayout))

	if len(r.Schedules) == 0 {
		b.WriteString("近期沒有可用的船期\n")
	} else {
		b.WriteString("最近的船期：\n")
		for _, s := range r.Schedules {
			fmt.Fprintf(&b, "船名：%s，航次：%s，開航日期：%s，到達日期：%s\n",
				s.VesselName, s.Voyage,
				s.DepartureDate.Format(dateLayout), s.ArrivalDate.Format(dateLayout))
		}
	}

	b.WriteString("如需更詳細的報價或有其他問題，請隨時詢問。")
	return b.String()
}

// FormatRouteNotFound tells the user the lane itself is not served. The
// query was understood; the data is missing.
func FormatRouteNotFound(ex Extraction) string {
	return fmt.Sprintf("目前沒有從 %s 到 %s 的航線資料，請確認航線或聯絡客服開通。",
		ex.Origin.Name, ex.Destination.Name)
}

// FormatRateNotFound tells the user the lane exists but carries no rate in
// effect for the requested container type.
func FormatRateNotFound(ex Extraction) string {
	return fmt.Sprintf("從 %s 到 %s 的航線目前沒有 %s 的有效運價，請稍後再查詢或聯絡客服。",
		ex.Origin.Name, ex.Destination.Name, ex.ContainerType.Name)
}

// FormatIncomplete is the generic guidance message used whenever the
// extractor could not fill all three slots, regardless of which subset it
// resolved.
func FormatIncomplete() string {
	return strings.Join([]string{
		"很抱歉，我無法根據您提供的資訊找到匹配的運費報價。請提供更完整的資訊，包括：",
		"起運港（例如：高雄、上海）",
		"目的港（例如：洛杉磯、鹿特丹）",
		"櫃型（例如：20呎標準貨櫃、40呎高櫃）",
		"例如：「請提供從高雄到洛杉磯的40呎高櫃運費報價」",
	}, "\n")
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
