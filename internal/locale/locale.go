// Package locale holds the string tables for the two supported display
// languages. Tables are consumed by key lookup and never mutated.
package locale

type Language string

const (
	English Language = "English"
	Hindi   Language = "Hindi"
)

// Strings returns the full table for a language. Unknown languages fall back
// to English.
func Strings(lang Language) map[string]string {
	if lang == Hindi {
		return hindiStrings
	}
	return englishStrings
}

// Lookup returns the display text for a single key, falling back to the key
// itself when missing so a typo never blanks out the UI.
func Lookup(lang Language, key string) string {
	if s, ok := Strings(lang)[key]; ok {
		return s
	}
	return key
}

var englishStrings = map[string]string{
	"dashboard":         "Dashboard",
	"cases":             "Case Files",
	"clients":           "Clients",
	"calendar":          "Calendar",
	"aiDrafts":          "AI Drafter",
	"billing":           "Billing & Invoices",
	"settings":          "Settings",
	"newCase":           "+ New Case",
	"search":            "Search cases, clients...",
	"upcomingHearings":  "Upcoming Hearings",
	"revenue":           "Total Revenue",
	"totalCases":        "Total Cases",
	"activeClients":     "Active Clients",
	"welcome":           "Welcome back, Advocate",
	"heroTitle":         "Modern Case Management for Indian Advocates",
	"heroSubtitle":      "Manage cases, clients, and courts in one place. AI-powered drafting for the modern legal era.",
	"startTrial":        "Start Free Trial",
	"login":             "Login",
	"features":          "Features",
	"pricing":           "Pricing",
	"testimonials":      "Testimonials",
	"featureCaseMgmt":   "Case Management",
	"featureAiDrafting": "AI Legal Drafting",
	"planBasic":         "Basic Plan",
	"planPro":           "Pro Plan",
	"loginTitle":        "Sign in to your account",
	"loginSubtitle":     "Welcome back! Please enter your details.",
	"emailLabel":        "Email",
	"passwordLabel":     "Password",
	"forgotPassword":    "Forgot password?",
	"signIn":            "Sign in",
	"orContinueWith":    "Or continue with",
	"dontHaveAccount":   "Don't have an account?",
	"signUp":            "Sign up",
}

var hindiStrings = map[string]string{
	"dashboard":         "डैशबोर्ड",
	"cases":             "मुकदमे (Cases)",
	"clients":           "मुवक्किल (Clients)",
	"calendar":          "कैलेंडर",
	"aiDrafts":          "AI ड्राफ्टिंग",
	"billing":           "बिल और चालान",
	"settings":          "सेटिंग्स",
	"newCase":           "+ नया मुकदमा",
	"search":            "खोजें...",
	"upcomingHearings":  "आगामी सुनवाई",
	"revenue":           "कुल राजस्व",
	"totalCases":        "कुल मुकदमे",
	"activeClients":     "सक्रिय मुवक्किल",
	"welcome":           "स्वागत है, अधिवक्ता जी",
	"heroTitle":         "भारतीय अधिवक्ताओं के लिए आधुनिक केस प्रबंधन",
	"heroSubtitle":      "अपने सभी केस, मुवक्किल और कोर्ट की जानकारी एक ही जगह प्रबंधित करें। आधुनिक युग के लिए AI-संचालित ड्राफ्टिंग।",
	"startTrial":        "मुफ्त ट्रायल शुरू करें",
	"login":             "लॉग इन",
	"features":          "विशेषताएं",
	"pricing":           "मूल्य निर्धारण",
	"testimonials":      "प्रशंसापत्र",
	"featureCaseMgmt":   "केस प्रबंधन",
	"featureAiDrafting": "AI कानूनी ड्राफ्टिंग",
	"planBasic":         "बेसिक प्लान",
	"planPro":           "प्रो प्लान",
	"loginTitle":        "अपने खाते में साइन इन करें",
	"loginSubtitle":     "वापसी पर स्वागत है! कृपया अपना विवरण दर्ज करें।",
	"emailLabel":        "ईमेल",
	"passwordLabel":     "पासवर्ड",
	"forgotPassword":    "पासवर्ड भूल गए?",
	"signIn":            "साइन इन",
	"orContinueWith":    "या इसके साथ जारी रखें",
	"dontHaveAccount":   "खाता नहीं है?",
	"signUp":            "साइन अप",
}
