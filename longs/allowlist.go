package longs

// allowlist holds legitimate Latin f-initial words that the statistical
// pass must never rewrite, whatever the frequency tables say. Lowercase,
// whole-word match after Pass 1.
var allowlist = map[string]struct{}{
	"facere": {}, "facio": {}, "facit": {}, "faciunt": {}, "feceram": {}, "fecerant": {},
	"fecerat": {}, "fecere": {}, "fecerim": {}, "fecerint": {}, "fecerit": {}, "fecerunt": {},
	"feci": {}, "fecimus": {}, "fecisse": {}, "fecissem": {}, "fecissent": {}, "fecisset": {},
	"fecisti": {}, "fecistis": {}, "fecit": {}, "fecunda": {}, "fecundam": {}, "fecundi": {},
	"fecundis": {}, "fecunditas": {}, "fecunditatem": {}, "fecundus": {}, "felice": {},
	"felicem": {}, "felices": {}, "felici": {}, "felicibus": {}, "felicis": {}, "feliciter": {},
	"felicium": {}, "felix": {}, "femina": {}, "feminae": {}, "feminam": {}, "feminarum": {},
	"feminas": {}, "feminis": {}, "fenestra": {}, "fenestram": {}, "fenestras": {},
	"fenestris": {}, "feram": {}, "ferebam": {}, "ferebant": {}, "ferebat": {}, "ferebatur": {},
	"feremus": {}, "ferendi": {}, "ferendo": {}, "ferendum": {}, "ferens": {}, "ferent": {},
	"ferentem": {}, "ferentis": {}, "feres": {}, "feret": {}, "ferimus": {}, "fero": {},
	"ferocem": {}, "feroces": {}, "feroci": {}, "ferocis": {}, "ferociter": {}, "ferox": {},
	"ferre": {}, "ferrem": {}, "ferrent": {}, "ferret": {}, "ferri": {}, "ferro": {},
	"ferrum": {}, "fers": {}, "fert": {}, "fertis": {}, "fertur": {}, "ferunt": {},
	"feruntur": {}, "festa": {}, "festi": {}, "festis": {}, "festo": {}, "festum": {},
	"fiant": {}, "fiat": {}, "fide": {}, "fidei": {}, "fideles": {}, "fidelibus": {},
	"fidelis": {}, "fideliter": {}, "fidelium": {}, "fidem": {}, "fides": {}, "fiebant": {},
	"fiebat": {}, "fierent": {}, "fieret": {}, "fieri": {}, "figura": {}, "figurae": {},
	"figuram": {}, "figurarum": {}, "figuras": {}, "figuris": {}, "filia": {}, "filiae": {},
	"filiam": {}, "filiarum": {}, "filias": {}, "filii": {}, "filiis": {}, "filio": {},
	"filiorum": {}, "filios": {}, "filium": {}, "filius": {}, "finem": {}, "fines": {},
	"finibus": {}, "finire": {}, "finis": {}, "finit": {}, "finita": {}, "finitum": {},
	"finitur": {}, "finium": {}, "fio": {}, "firma": {}, "firmam": {}, "firmamenti": {},
	"firmamento": {}, "firmamentum": {}, "firmare": {}, "firmat": {}, "firmi": {},
	"firmiter": {}, "firmum": {}, "firmus": {}, "fit": {}, "fiunt": {}, "forma": {},
	"formae": {}, "formam": {}, "formas": {}, "fuerat": {}, "fuerint": {}, "fuerit": {},
	"fuerunt": {}, "fugere": {}, "fugerunt": {}, "fugi": {}, "fugiens": {}, "fugio": {},
	"fugisse": {}, "fugit": {}, "fugiunt": {}, "fuisse": {}, "fuissem": {}, "fuissent": {},
	"fuisset": {}, "fuit": {}, "fundamenta": {}, "fundamenti": {}, "fundamento": {},
	"fundamentum": {}, "furor": {}, "furore": {}, "furorem": {}, "furoris": {}, "futura": {},
	"futuram": {}, "futuri": {}, "futuris": {}, "futurum": {}, "futurus": {},
}
