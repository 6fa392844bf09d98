package surface

import "github.com/cervicare/cervicare/pkg/scoring"

// Tip is one preventive health recommendation.
type Tip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type catalog struct {
	heading    string
	keyFactors string
	factors    string
	note       string
	disclaimer string
	tipsTitle  string
	levels     map[scoring.RiskLevel]string
	tiers      map[scoring.RiskLevel]string
	tips       []Tip
}

var catalogs = map[string]catalog{
	"en": {
		heading:    "Risk Assessment",
		keyFactors: "Key factors noted:",
		factors:    "Score breakdown:",
		note:       "This assessment is based on known risk factors and is for educational purposes only.",
		disclaimer: "This tool is for educational purposes only. Always consult healthcare professionals for medical advice.",
		tipsTitle:  "Here are some important tips to help protect your cervical health! 🌟",
		levels: map[scoring.RiskLevel]string{
			scoring.LevelLow:      "LOW",
			scoring.LevelModerate: "MODERATE",
			scoring.LevelHigh:     "HIGH",
		},
		tiers: map[scoring.RiskLevel]string{
			scoring.LevelLow:      "Based on your responses, you appear to have a LOW risk for cervical cancer. Keep up with regular screenings and maintain healthy habits!",
			scoring.LevelModerate: "Your responses suggest a MODERATE risk. While this doesn't mean you have cancer, we recommend discussing these results with your healthcare provider for personalized advice.",
			scoring.LevelHigh:     "Your responses indicate a HIGHER risk profile. Please consult with a healthcare professional soon for proper screening and guidance. Early detection is key!",
		},
		tips: []Tip{
			{"Regular Pap Smear Screenings", "Get screened every 3 years (ages 21-65) or as recommended by your doctor. Early detection saves lives!"},
			{"HPV Vaccination", "Consider HPV vaccination if you haven't already. It protects against the most common cancer-causing HPV types."},
			{"Practice Safe Sexual Health", "Use protection, limit partners, and have open conversations about sexual health with partners and doctors."},
			{"Maintain a Healthy Lifestyle", "Don't smoke, eat a balanced diet rich in fruits and vegetables, exercise regularly, and manage stress."},
			{"Stay Informed", "Keep up with the latest health recommendations and don't hesitate to ask your healthcare provider questions."},
		},
	},
	"hi": {
		heading:    "जोखिम मूल्यांकन",
		keyFactors: "मुख्य कारक:",
		factors:    "स्कोर विवरण:",
		note:       "यह मूल्यांकन ज्ञात जोखिम कारकों पर आधारित है और केवल शैक्षिक उद्देश्यों के लिए है।",
		disclaimer: "यह उपकरण केवल शैक्षिक उद्देश्यों के लिए है। चिकित्सा सलाह के लिए हमेशा स्वास्थ्य पेशेवरों से सलाह लें।",
		tipsTitle:  "यहां आपके गर्भाशय ग्रीवा स्वास्थ्य की रक्षा में मदद करने के लिए कुछ महत्वपूर्ण सुझाव हैं! 🌟",
		levels: map[scoring.RiskLevel]string{
			scoring.LevelLow:      "कम",
			scoring.LevelModerate: "मध्यम",
			scoring.LevelHigh:     "उच्च",
		},
		tiers: map[scoring.RiskLevel]string{
			scoring.LevelLow:      "आपके उत्तरों के आधार पर, आपको गर्भाशय ग्रीवा के कैंसर का कम जोखिम दिखता है। नियमित जांच कराते रहें और स्वस्थ आदतें बनाए रखें!",
			scoring.LevelModerate: "आपके उत्तर मध्यम जोखिम का सुझाव देते हैं। इसका मतलब यह नहीं है कि आपको कैंसर है, लेकिन हम सुझाव देते हैं कि व्यक्तिगत सलाह के लिए अपने स्वास्थ्य प्रदाता से इन परिणामों पर चर्चा करें।",
			scoring.LevelHigh:     "आपके उत्तर उच्च जोखिम प्रोफ़ाइल का संकेत देते हैं। कृपया उचित जांच और मार्गदर्शन के लिए जल्द ही किसी स्वास्थ्य पेशेवर से सलाह लें। जल्दी पता लगाना महत्वपूर्ण है!",
		},
		tips: []Tip{
			{"नियमित पैप स्मीयर जांच", "डॉक्टर की सिफारिश के अनुसार हर 3 साल में जांच कराएं (21-65 वर्ष की आयु)। जल्दी पता लगाना जीवन बचाता है!"},
			{"HPV वैक्सीनेशन", "यदि आपने पहले नहीं कराया है तो HPV वैक्सीनेशन पर विचार करें। यह सबसे आम कैंसर पैदा करने वाले HPV प्रकारों से सुरक्षा प्रदान करता है।"},
			{"सुरक्षित यौन स्वास्थ्य का अभ्यास करें", "सुरक्षा का उपयोग करें, साझीदारों को सीमित करें, और साझीदारों और डॉक्टरों के साथ यौन स्वास्थ्य के बारे में खुली बातचीत करें।"},
			{"स्वस्थ जीवनशैली बनाए रखें", "धूम्रपान न करें, फल और सब्जियों से भरपूर संतुलित आहार लें, नियमित व्यायाम करें, और तनाव को नियंत्रित करें।"},
			{"जानकार रहें", "नवीनतम स्वास्थ्य सिफारिशों से अवगत रहें और अपने स्वास्थ्य प्रदाता से सवाल पूछने में संकोच न करें।"},
		},
	},
}

// Languages lists the supported message languages.
func Languages() []string { return []string{"en", "hi"} }

// lookup falls back to English for unknown languages.
func lookup(lang string) catalog {
	if c, ok := catalogs[lang]; ok {
		return c
	}
	return catalogs["en"]
}

// TierMessage returns the explanation shown for a tier. Unknown levels get
// the low-risk message.
func TierMessage(level scoring.RiskLevel, lang string) string {
	c := lookup(lang)
	if m, ok := c.tiers[level]; ok {
		return m
	}
	return c.tiers[scoring.LevelLow]
}

// Tips returns the preventive tips in display order.
func Tips(lang string) []Tip {
	return append([]Tip(nil), lookup(lang).tips...)
}

// TipsTitle returns the heading shown above the tips.
func TipsTitle(lang string) string { return lookup(lang).tipsTitle }

// Disclaimer returns the educational-use disclaimer.
func Disclaimer(lang string) string { return lookup(lang).disclaimer }
