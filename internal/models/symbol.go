package models

// Symbol — тикер из закрытого набора торгуемых инструментов площадки.
type Symbol string

func (s Symbol) String() string { return string(s) }

// Valid сообщает, входит ли тикер в поддерживаемый набор.
func (s Symbol) Valid() bool {
	_, ok := validSymbols[s]
	return ok
}

var validSymbols = map[Symbol]struct{}{
	"/KC": {},
	"/NQ": {},
	"/YM": {},
	"/ZS": {},
	"1000BONKUSDTPERP": {},
	"1000PEPEUSDTPERP": {},
	"1000SATSUSDTPERP": {},
	"1INCHUSDTPERP": {},
	"1MBABYDOGEUSDTPERP": {},
	"AAPL": {},
	"AAVEUSDTPERP": {},
	"ACTUSDTPERP": {},
	"ADAUSD": {},
	"ADAUSDTPERP": {},
	"ADSGn": {},
	"ALGOUSDTPERP": {},
	"ALICEUSDTPERP": {},
	"ALPHAUSDTPERP": {},
	"ALVG": {},
	"AMZN": {},
	"ANKRUSDTPERP": {},
	"APEUSDTPERP": {},
	"APTUSDTPERP": {},
	"ARABICA": {},
	"ARUSDTPERP": {},
	"ATOMUSDTPERP": {},
	"AUD$": {},
	"AUDCAD": {},
	"AUDCAD.cent": {},
	"AUDCHF": {},
	"AUDCHF.cent": {},
	"AUDIOUSDTPERP": {},
	"AUDJPY": {},
	"AUDJPY.cent": {},
	"AUDNZD": {},
	"AUDNZD.cent": {},
	"AUDUSD": {},
	"AUDUSD.cent": {},
	"AUS200": {},
	"AUS200.cent": {},
	"AVAXUSDTPERP": {},
	"AXSUSDTPERP": {},
	"BA": {},
	"BAC": {},
	"BAKEUSDTPERP": {},
	"BATUSD": {},
	"BATUSDTPERP": {},
	"BAT_TST": {},
	"BAYGn": {},
	"BBUSDTPERP": {},
	"BCH$": {},
	"BCHUSD": {},
	"BCHUSDTPERP": {},
	"BMWG": {},
	"BNBUSD": {},
	"BNBUSDTPERP": {},
	"BNPP": {},
	"BOOM1000": {},
	"BOOM300": {},
	"BOOM500": {},
	"BTC$": {},
	"BTCUSD": {},
	"BTCUSD.cent": {},
	"BTCUSDTPERP": {},
	"BTCUSDTPERP.cent": {},
	"C": {},
	"CAD$": {},
	"CADCHF": {},
	"CADCHF.cent": {},
	"CADJPY": {},
	"CADJPY.cent": {},
	"CADSGD": {},
	"CATIUSDTPERP": {},
	"CELOUSDTPERP": {},
	"CELRUSDTPERP": {},
	"CHF$": {},
	"CHFJPY": {},
	"CHFJPY.cent": {},
	"CHZUSDTPERP": {},
	"CNH$": {},
	"CNY$": {},
	"COCOA": {},
	"COMPUSDTPERP": {},
	"COTTON": {},
	"CRASH1000": {},
	"CRASH300": {},
	"CRASH500": {},
	"CRVUSDTPERP": {},
	"CSCO": {},
	"CTKUSDTPERP": {},
	"CUDISUSDTPERP": {},
	"CVX": {},
	"CZK$": {},
	"DAMUSDTPERP": {},
	"DARUSDTPERP": {},
	"DASH$": {},
	"DASHUSDTPERP": {},
	"DAX": {},
	"DAX.cent": {},
	"DENTUSDTPERP": {},
	"DIAUSDTPERP": {},
	"DKK$": {},
	"DOGE$": {},
	"DOGEUSD": {},
	"DOGEUSDTPERP": {},
	"DOTUSD": {},
	"DOTUSDTPERP": {},
	"DUSKUSDTPERP": {},
	"DXY": {},
	"DYDXUSDTPERP": {},
	"EGLDUSDTPERP": {},
	"EIGENUSDTPERP": {},
	"ENAUSDTPERP": {},
	"ENJUSDTPERP": {},
	"ENSUSDTPERP": {},
	"EOS$": {},
	"EOSUSD": {},
	"EOSUSDTPERP": {},
	"ESP35": {},
	"ESP35.cent": {},
	"ETC$": {},
	"ETCUSDTPERP": {},
	"ETH$": {},
	"ETHFIUSDTPERP": {},
	"ETHUSD": {},
	"ETHUSD.cent": {},
	"ETHUSDTPERP": {},
	"ETHUSDTPERP.cent": {},
	"EUR$": {},
	"EURAUD": {},
	"EURAUD.cent": {},
	"EURCAD": {},
	"EURCAD.cent": {},
	"EURCHF": {},
	"EURCHF.cent": {},
	"EURCZK": {},
	"EURDKK": {},
	"EURGBP": {},
	"EURGBP.cent": {},
	"EURHKD": {},
	"EURHUF": {},
	"EURJPY": {},
	"EURJPY.cent": {},
	"EURNOK": {},
	"EURNZD": {},
	"EURNZD.cent": {},
	"EURPLN": {},
	"EURSEK": {},
	"EURSGD": {},
	"EURTRY": {},
	"EURUSD": {},
	"EURUSD.cent": {},
	"EURZAR": {},
	"EUSTX50": {},
	"EUSTX50.cent": {},
	"F": {},
	"FARTCOINUSDTPERP": {},
	"FDX": {},
	"FETUSDTPERP": {},
	"FILUSDTPERP": {},
	"FLMUSDTPERP": {},
	"FLOWUSDTPERP": {},
	"FRA40": {},
	"FRA40.cent": {},
	"FTMUSDTPERP": {},
	"GALAUSDTPERP": {},
	"GALUSDTPERP": {},
	"GBP$": {},
	"GBPAUD": {},
	"GBPAUD.cent": {},
	"GBPCAD": {},
	"GBPCAD.cent": {},
	"GBPCHF": {},
	"GBPCHF.cent": {},
	"GBPDKK": {},
	"GBPJPY": {},
	"GBPJPY.cent": {},
	"GBPNOK": {},
	"GBPNZD": {},
	"GBPNZD.cent": {},
	"GBPSEK": {},
	"GBPUSD": {},
	"GBPUSD.cent": {},
	"GLMUSDTPERP": {},
	"GMTUSDTPERP": {},
	"GOATUSDTPERP": {},
	"GOOG": {},
	"GRTUSDTPERP": {},
	"HBARUSDTPERP": {},
	"HIGHUSDTPERP": {},
	"HKD$": {},
	"HMSTRUSDTPERP": {},
	"HOTUSDTPERP": {},
	"HP": {},
	"HUF$": {},
	"HUMAUSDTPERP": {},
	"HYPEUSDTPERP": {},
	"IBE": {},
	"IBM": {},
	"ICPUSDTPERP": {},
	"ICXUSDTPERP": {},
	"ILS$": {},
	"IMXUSDTPERP": {},
	"INJUSDTPERP": {},
	"INR$": {},
	"INTC": {},
	"IOSTUSDTPERP": {},
	"IOTAUSDTPERP": {},
	"IOTXUSDTPERP": {},
	"IOUSDTPERP": {},
	"IPUSDTPERP": {},
	"JASMYUSDTPERP": {},
	"JNJ": {},
	"JPM": {},
	"JPN225": {},
	"JPN225.cent": {},
	"JPY$": {},
	"JUPUSDTPERP": {},
	"KAITOUSDTPERP": {},
	"KASUSDTPERP": {},
	"KAVAUSDTPERP": {},
	"KLAYUSDTPERP": {},
	"KNCUSDTPERP": {},
	"KO": {},
	"KRW$": {},
	"KSMUSDTPERP": {},
	"LAUSDTPERP": {},
	"LDOUSDTPERP": {},
	"LINKUSDTPERP": {},
	"LISTAUSDTPERP": {},
	"LITUSDTPERP": {},
	"LPTUSDTPERP": {},
	"LRCUSDTPERP": {},
	"LTC$": {},
	"LTCUSD": {},
	"LTCUSDTPERP": {},
	"LVMH": {},
	"MA": {},
	"MANAUSDTPERP": {},
	"MANTAUSDTPERP": {},
	"MATICUSDTPERP": {},
	"MCD": {},
	"MELANIAUSDTPERP": {},
	"MERLUSDTPERP": {},
	"METISUSDTPERP": {},
	"MKRUSDTPERP": {},
	"MOODENGUSDTPERP": {},
	"MSFT": {},
	"MVRS": {},
	"MXN$": {},
	"NAS100": {},
	"NAS100.cent": {},
	"NEARUSDTPERP": {},
	"NEIROETHUSDTPERP": {},
	"NEIROUSDTPERP": {},
	"NEOUSDTPERP": {},
	"NFLX": {},
	"NGAS": {},
	"NOK$": {},
	"NOKSEK": {},
	"NOTUSDTPERP": {},
	"NZD$": {},
	"NZDCAD": {},
	"NZDCAD.cent": {},
	"NZDCHF": {},
	"NZDCHF.cent": {},
	"NZDJPY": {},
	"NZDJPY.cent": {},
	"NZDUSD": {},
	"NZDUSD.cent": {},
	"OGNUSDTPERP": {},
	"ONDOUSDTPERP": {},
	"ONEUSDTPERP": {},
	"OPUSDTPERP": {},
	"ORCL": {},
	"ORDIUSDTPERP": {},
	"OXTUSDTPERP": {},
	"PENDLEUSDTPERP": {},
	"PEOPLEUSDTPERP": {},
	"PG": {},
	"PLN$": {},
	"PNUTUSDTPERP": {},
	"POLYXUSDTPERP": {},
	"POPCATUSDTPERP": {},
	"PORTALUSDTPERP": {},
	"POWRUSDTPERP": {},
	"PROVEUSDTPERP": {},
	"PYTHUSDTPERP": {},
	"QNTUSDTPERP": {},
	"QTUMUSDTPERP": {},
	"RAREUSDTPERP": {},
	"REEFUSDTPERP": {},
	"RENDERUSDTPERP": {},
	"REZUSDTPERP": {},
	"RNDRUSDTPERP": {},
	"ROBUSTA": {},
	"ROSEUSDTPERP": {},
	"RUB$": {},
	"RUNEUSDTPERP": {},
	"SANDUSDTPERP": {},
	"SAPIENUSDTPERP": {},
	"SEIUSDTPERP": {},
	"SEK$": {},
	"SGD$": {},
	"SIEGn": {},
	"SKK$": {},
	"SNXUSDTPERP": {},
	"SOLUSD": {},
	"SOLUSDTPERP": {},
	"SONICUSDTPERP": {},
	"SOPHUSDTPERP": {},
	"SPELLUSDTPERP": {},
	"SPX500": {},
	"SPX500.cent": {},
	"STORJUSDTPERP": {},
	"STRKUSDTPERP": {},
	"SUGARRAW": {},
	"SUIUSDTPERP": {},
	"SUSHIUSDTPERP": {},
	"T": {},
	"THB$": {},
	"THBJPY": {},
	"THETAUSDTPERP": {},
	"TIAUSDTPERP": {},
	"TOKENUSDTPERP": {},
	"TONUSDTPERP": {},
	"TRBUSDTPERP": {},
	"TROYUSDTPERP": {},
	"TRUMPUSDTPERP": {},
	"TRUUSDTPERP": {},
	"TRXUSD": {},
	"TRXUSDTPERP": {},
	"TRY$": {},
	"TSLA": {},
	"TURBOUSDTPERP": {},
	"UAH$": {},
	"UK100": {},
	"UK100.cent": {},
	"UKOil": {},
	"UNFIUSDTPERP": {},
	"UNIUSDTPERP": {},
	"US30": {},
	"US30.cent": {},
	"USD$": {},
	"USDCAD": {},
	"USDCAD.cent": {},
	"USDCHF": {},
	"USDCHF.cent": {},
	"USDCNH": {},
	"USDCZK": {},
	"USDDKK": {},
	"USDHKD": {},
	"USDHUF": {},
	"USDILS": {},
	"USDJPY": {},
	"USDJPY.cent": {},
	"USDMXN": {},
	"USDNOK": {},
	"USDPLN": {},
	"USDSEK": {},
	"USDSGD": {},
	"USDT$": {},
	"USDTHB": {},
	"USDTRY": {},
	"USDTUSD": {},
	"USDZAR": {},
	"USOil": {},
	"UXLINKUSDTPERP": {},
	"V": {},
	"VETUSDTPERP": {},
	"VIX": {},
	"VOWG_p": {},
	"WAVESUSDTPERP": {},
	"WCTUSDTPERP": {},
	"WIFUSDTPERP": {},
	"WLDUSDTPERP": {},
	"WUUSDTPERP": {},
	"XAGUSD": {},
	"XAGUSD.cent": {},
	"XAIUSDTPERP": {},
	"XAUAUD": {},
	"XAUAUD.cent": {},
	"XAUEUR": {},
	"XAUEUR.cent": {},
	"XAUUSD": {},
	"XAUUSD.cent": {},
	"XCNUSDTPERP": {},
	"XDG$": {},
	"XLM$": {},
	"XLMUSD": {},
	"XLMUSDTPERP": {},
	"XMR$": {},
	"XMRUSDTPERP": {},
	"XNYUSDTPERP": {},
	"XOM": {},
	"XPDUSD": {},
	"XPTUSD": {},
	"XRP$": {},
	"XRPUSD": {},
	"XRPUSDTPERP": {},
	"XTZUSDTPERP": {},
	"YFIUSDTPERP": {},
	"ZAR$": {},
	"ZECUSDTPERP": {},
	"ZENUSDTPERP": {},
	"ZILUSDTPERP": {},
	"ZKUSDTPERP": {},
	"ZROUSDTPERP": {},
}
