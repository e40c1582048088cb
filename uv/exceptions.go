package uv

// vocalicUWords are whole word forms whose 'u' is vocalic even where the
// positional rules would assign 'v'. Checked after the digraph rules and
// before the perfect-tense heuristics; the order is load-bearing.
var vocalicUWords = map[string]struct{}{
	// Demonstrative/relative pronouns
	"cui": {}, "cuius": {}, "huic": {}, "huius": {}, "cuique": {}, "cuiquam": {},
	// Possessive pronouns (suus, tuus)
	"sua": {}, "suae": {}, "suam": {}, "suas": {}, "suis": {}, "suo": {}, "suos": {},
	"suum": {}, "suorum": {}, "suarum": {},
	"tua": {}, "tuae": {}, "tuam": {}, "tuas": {}, "tuis": {}, "tuo": {}, "tuos": {},
	"tuum": {}, "tuorum": {}, "tuarum": {},
	"tuus": {}, "suus": {},
	// Other pronouns
	"eius": {}, "eiusdem": {},
	// Numerals (duo)
	"duo": {}, "duae": {}, "duos": {}, "duas": {}, "duobus": {}, "duabus": {},
	"duorum": {}, "duarum": {},
	// Words with -uus/-uum pattern (vocalic u)
	"perpetuum": {}, "perpetua": {}, "perpetuae": {}, "perpetuo": {}, "perpetuam": {},
	"annuum": {}, "annua": {}, "annuae": {}, "annuo": {},
	"mutuus": {}, "mutua": {}, "mutuae": {}, "mutuum": {}, "mutuo": {},
	"continuus": {}, "continua": {}, "continuae": {}, "continuum": {}, "continuo": {},
	"vacuus": {}, "vacua": {}, "vacuae": {}, "vacuum": {}, "vacuo": {},
	"ambiguus": {}, "ambigua": {}, "ambiguae": {}, "ambiguum": {}, "ambiguo": {},
	"exiguus": {}, "exigua": {}, "exiguum": {}, "exiguo": {},
	"assiduus": {}, "assidua": {}, "assiduum": {}, "assiduo": {},
	// U-perfect verb forms
	"intremuit": {}, "tremuit": {}, "fremuit": {}, "gemuit": {}, "intremuitque": {},
	"expalluit": {}, "palluit": {},
	// Desero-type verbs
	"deseruit": {}, "inseruit": {}, "conseruit": {},
	// Syncopated perfects
	"potuere": {}, "fuere": {}, "habuere": {}, "tenuere": {}, "docuere": {}, "monuere": {},
	"placuere": {}, "tacuere": {}, "patuere": {}, "latuere": {}, "caruere": {}, "obstipuere": {},
	"obruerat": {}, "obruit": {},
	// Fruor family
	"frui": {}, "fruor": {}, "fruitur": {}, "fruuntur": {},
	// Other specific forms
	"tenues": {}, "tenuis": {}, "impluit": {}, "compluit": {},
	// Fluo family
	"fluunt": {}, "effluunt": {}, "affluunt": {}, "confluunt": {}, "influunt": {},
	"refluunt": {}, "defluunt": {}, "profluunt": {}, "circumfluunt": {},
}

// vocalicUStems are stems where 'u' between a consonant and a vowel is
// vocalic. Substring match inside the containing word covers all declined
// and conjugated forms.
var vocalicUStems = []string{
	"suad",     // suadeo, persuadeo
	"suar",     // suarum
	"suav",     // suavis
	"statu",    // statua, statuae, ...
	"ardu",     // ardua, arduum, ...
	"fatu",     // fatua, fatuum, ...
	"residu",   // residua, residuum, ...
	"strenu",   // strenua, strenuus, ...
	"conspicu", // conspicua, conspicuum, ...
	"individu", // individua, individuum, ...
}
