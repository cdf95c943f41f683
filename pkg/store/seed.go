package store

import "github.com/esyang202423/tripboard/pkg/models"

// Seed content for the 2025 Cebu/Bohol trip. This is the product content of the
// app, edited in place by the owner through the API, never persisted.

var seedMeta = models.TripMeta{
	Title:        "新春揚揚得意 菲律賓之旅",
	Subtitle:     "宿霧跨年 ‧ 薄荷海島 ‧ 跳島探險",
	DateRange:    "Feb 12 - 18, 2025",
	HeroImageURL: "https://images.unsplash.com/photo-1542332213-9b5a5a3fad35?auto=format&fit=crop&q=80&w=1974",
	Conclusion:   "享受當下，每一個笑容都是最美的風景。",
}

var seedTips = []models.Tip{
	{
		Title:   "必備文件",
		Icon:    "📄",
		Content: "護照(效期6個月以上)、eTravel QR Code (出發前72hr填寫)、回程機票證明、簽證紙本。",
	},
	{
		Title:   "換匯攻略",
		Icon:    "💰",
		Content: "建議帶美金大鈔 (100/50 USD) 到當地商場 (如 Ayala Mall) 匯率最好。機場換一點點付車資即可。",
	},
	{
		Title:   "網卡/交通",
		Icon:    "📱",
		Content: "Grab App 必載 (綁定信用卡方便叫車)。網卡建議 Globe 或 Smart，機場櫃檯或先買好 eSIM。",
	},
	{
		Title:   "離境稅",
		Icon:    "✈️",
		Content: "宿霧離境稅 850 PHP (通常只收現金)，記得最後要把這筆錢留下來！",
	},
}

var seedDays = []models.TripDay{
	{
		ID:    "day1",
		Date:  "02/12",
		Title: "抵達宿霧 🇵🇭",
		Activities: []models.Activity{
			{ID: "a1", Time: "10:00", Description: "抵達宿霧麥克坦機場", Notes: "提領行李、換匯、購買網卡"},
			{ID: "a2", Time: "12:00", Description: "前往碼頭 / 市區午餐", Notes: "搭乘 OceanJet 前往薄荷島 (需提早買票)"},
			{ID: "a3", Time: "16:00", Description: "抵達薄荷島 & 飯店 Check-in", Notes: "入住海邊度假村，享受夕陽"},
		},
	},
	{
		ID:    "day2",
		Date:  "02/13",
		Title: "薄荷島陸地一日遊 🍫",
		Activities: []models.Activity{
			{ID: "b1", Time: "09:00", Description: "巧克力山 Chocolate Hills", Notes: "騎乘 ATV 越野車探險"},
			{ID: "b2", Time: "11:00", Description: "眼鏡猴保護區", Notes: "安靜參觀，不可開閃光燈"},
			{ID: "b3", Time: "13:00", Description: "羅伯河遊船午餐", Notes: "享受菲式自助餐與現場音樂"},
		},
	},
	{
		ID:    "day3",
		Date:  "02/14",
		Title: "跳島出海追海龜 🐢",
		Activities: []models.Activity{
			{ID: "c1", Time: "06:00", Description: "早起出海追海豚", Notes: "運氣好可以看到成群海豚"},
			{ID: "c2", Time: "08:00", Description: "巴里卡薩大斷層浮潛", Notes: "與海龜共游，欣賞珊瑚礁"},
			{ID: "c3", Time: "12:00", Description: "處女島 Virgin Island", Notes: "絕美月牙灣沙灘拍照"},
		},
	},
	{
		ID:    "day4",
		Date:  "02/15",
		Title: "享受度假村與放鬆 🏖️",
		Activities: []models.Activity{
			{ID: "d1", Time: "10:00", Description: "睡到自然醒 / 飯店早餐", Notes: "享受飯店設施、泳池"},
			{ID: "d2", Time: "15:00", Description: "Alona Beach 沙灘漫步", Notes: "逛逛海邊小店、按摩 SPA"},
			{ID: "d3", Time: "18:00", Description: "沙灘晚餐", Notes: "享用海鮮燒烤與 Live Band"},
		},
	},
	{
		ID:    "day5",
		Date:  "02/16",
		Title: "返回宿霧市區 🚢",
		Activities: []models.Activity{
			{ID: "e1", Time: "11:00", Description: "搭船返回宿霧", Notes: "注意碼頭稅與行李費"},
			{ID: "e2", Time: "14:00", Description: "宿霧市區觀光", Notes: "麥哲倫十字架、聖嬰大教堂"},
			{ID: "e3", Time: "17:00", Description: "SM City 或 Ayala Mall 購物", Notes: "購買伴手禮 (芒果乾)"},
		},
	},
}
