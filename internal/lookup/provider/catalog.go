package provider

import "github.com/l0p7/nickgate/internal/lookup"

// Clients bundles the shared upstream clients the catalog binds adapters to.
type Clients struct {
	Codashop *CodashopClient
	Topup    *TopupClient
}

// Adapters returns the full closed set of supported games. The code strings
// are the public contract surface and must not change.
func Adapters(c Clients) []lookup.Adapter {
	return []lookup.Adapter{
		&codashopAdapter{
			code:  "mobile-legend",
			title: "Mobile Legends: Bang Bang",
			catalog: codashopCatalog{
				voucherTypeName: "MOBILE_LEGENDS",
				pricePointID:    "27670",
				price:           "28000.0",
				shopLang:        "id_ID",
			},
			zoned:  true,
			client: c.Codashop,
		},
		&topupAdapter{
			code:      "free-fire",
			title:     "Garena Free Fire",
			slug:      "free-fire",
			productID: 3,
			client:    c.Topup,
		},
		&codashopAdapter{
			code:  "genshin-impact",
			title: "Genshin Impact",
			catalog: codashopCatalog{
				voucherTypeName: "GENSHIN_IMPACT",
				pricePointID:    "116054",
				price:           "16500.0",
				shopLang:        "id_ID",
			},
			zoned:  true,
			client: c.Codashop,
		},
		&codashopAdapter{
			code:  "higgs-domino",
			title: "Higgs Domino Island",
			catalog: codashopCatalog{
				voucherTypeName: "HIGGS_DOMINO",
				pricePointID:    "97904",
				price:           "11900.0",
				shopLang:        "id_ID",
			},
			client: c.Codashop,
		},
		&codashopAdapter{
			code:  "pubg-mobile",
			title: "PUBG Mobile",
			catalog: codashopCatalog{
				voucherTypeName: "PUBG_MOBILE",
				pricePointID:    "212163",
				price:           "15000.0",
				shopLang:        "id_ID",
			},
			client: c.Codashop,
		},
		&codashopAdapter{
			code:  "call-of-duty-mobile",
			title: "Call of Duty: Mobile",
			catalog: codashopCatalog{
				voucherTypeName: "CALL_OF_DUTY",
				pricePointID:    "71803",
				price:           "10000.0",
				shopLang:        "id_ID",
			},
			client: c.Codashop,
		},
		&codashopAdapter{
			code:  "arena-of-valor",
			title: "Arena of Valor",
			catalog: codashopCatalog{
				voucherTypeName: "AOV",
				pricePointID:    "5402",
				price:           "10870.0",
				shopLang:        "id_ID",
			},
			client: c.Codashop,
		},
		&codashopAdapter{
			code:  "dragon-raja",
			title: "Dragon Raja",
			catalog: codashopCatalog{
				voucherTypeName: "DRAGON_RAJA",
				pricePointID:    "77539",
				price:           "15000.0",
				shopLang:        "id_ID",
			},
			zoned:  true,
			client: c.Codashop,
		},
		&codashopAdapter{
			code:  "ragnarok-m",
			title: "Ragnarok M: Eternal Love",
			catalog: codashopCatalog{
				voucherTypeName: "RAGNAROK",
				pricePointID:    "23821",
				price:           "14000.0",
				shopLang:        "id_ID",
			},
			zoned:  true,
			client: c.Codashop,
		},
		&codashopAdapter{
			code:  "laplace-m",
			title: "Laplace M",
			catalog: codashopCatalog{
				voucherTypeName: "LAPLACE_M",
				pricePointID:    "55312",
				price:           "14500.0",
				shopLang:        "id_ID",
			},
			zoned:  true,
			client: c.Codashop,
		},
		&codashopAdapter{
			code:  "lifeafter",
			title: "LifeAfter",
			catalog: codashopCatalog{
				voucherTypeName: "LIFEAFTER",
				pricePointID:    "66433",
				price:           "13000.0",
				shopLang:        "id_ID",
			},
			zoned:  true,
			client: c.Codashop,
		},
		&codashopAdapter{
			code:  "marvel-super-war",
			title: "MARVEL Super War",
			catalog: codashopCatalog{
				voucherTypeName: "MARVEL_SUPER_WAR",
				pricePointID:    "76501",
				price:           "15000.0",
				shopLang:        "id_ID",
			},
			client: c.Codashop,
		},
		&codashopAdapter{
			code:  "speed-drifters",
			title: "Garena Speed Drifters",
			catalog: codashopCatalog{
				voucherTypeName: "SPEED_DRIFTERS",
				pricePointID:    "35089",
				price:           "10000.0",
				shopLang:        "id_ID",
			},
			client: c.Codashop,
		},
		&codashopAdapter{
			code:  "auto-chess",
			title: "Auto Chess",
			catalog: codashopCatalog{
				voucherTypeName: "AUTO_CHESS",
				pricePointID:    "61049",
				price:           "14000.0",
				shopLang:        "id_ID",
			},
			client: c.Codashop,
		},
		&codashopAdapter{
			code:  "point-blank",
			title: "Point Blank",
			catalog: codashopCatalog{
				voucherTypeName: "POINT_BLANK",
				pricePointID:    "5213",
				price:           "11000.0",
				shopLang:        "id_ID",
			},
			client: c.Codashop,
		},
		&topupAdapter{
			code:      "sausage-man",
			title:     "Sausage Man",
			slug:      "sausage-man",
			productID: 11,
			client:    c.Topup,
		},
		&codashopAdapter{
			code:  "garena-voucher",
			title: "Garena Voucher",
			catalog: codashopCatalog{
				voucherTypeName: "GARENA",
				pricePointID:    "4541",
				price:           "10000.0",
				shopLang:        "id_ID",
			},
			client: c.Codashop,
		},
	}
}
