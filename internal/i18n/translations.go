package i18n

// translations holds the interaction messages the backend surfaces. The
// static page copy (biography, timeline, gallery) ships with the frontend
// bundle and is not duplicated here.
var translations = map[string]map[Language]string{
	"testimonials.success": {
		English: "Thank you for sharing your memory! Your testimonial has been submitted successfully.",
		French:  "Merci d'avoir partagé votre souvenir ! Votre témoignage a été soumis avec succès.",
	},
	"testimonials.errors.missingFields": {
		English: "Please fill in all required fields.",
		French:  "Veuillez remplir tous les champs obligatoires.",
	},
	"testimonials.errors.tooLong": {
		English: "Your message is too long. Please keep it under 500 words.",
		French:  "Votre message est trop long. Veuillez le limiter à 500 mots.",
	},
	"testimonials.errors.profanity": {
		English: "Your submission contains inappropriate language. Please revise and resubmit.",
		French:  "Votre soumission contient un langage inapproprié. Veuillez la modifier et la soumettre à nouveau.",
	},
	"testimonials.errors.links": {
		English: "Links are not allowed in testimonials. Please remove any URLs.",
		French:  "Les liens ne sont pas autorisés dans les témoignages. Veuillez supprimer toute URL.",
	},
	"testimonials.errors.rateLimited": {
		English: "Please wait %d minutes before submitting another testimonial.",
		French:  "Veuillez attendre %d minutes avant de soumettre un autre témoignage.",
	},
	"testimonials.errors.submitFailed": {
		English: "An error occurred while submitting your testimonial. Please try again.",
		French:  "Une erreur s'est produite lors de la soumission de votre témoignage. Veuillez réessayer.",
	},
	"testimonials.errors.badRequest": {
		English: "The submission could not be read. Please check the form and try again.",
		French:  "La soumission n'a pas pu être lue. Veuillez vérifier le formulaire et réessayer.",
	},
	"testimonials.errors.loadFailed": {
		English: "Testimonials are temporarily unavailable. Please try again later.",
		French:  "Les témoignages sont temporairement indisponibles. Veuillez réessayer plus tard.",
	},
	"candles.success": {
		English: "Candle lit",
		French:  "Bougie allumée",
	},
	"candles.errors.nameTooLong": {
		English: "Please keep your name under 50 characters.",
		French:  "Veuillez limiter votre nom à 50 caractères.",
	},
	"candles.errors.lightFailed": {
		English: "The candle could not be lit. Please try again.",
		French:  "La bougie n'a pas pu être allumée. Veuillez réessayer.",
	},
	"candles.errors.loadFailed": {
		English: "Candles are temporarily unavailable. Please try again later.",
		French:  "Les bougies sont temporairement indisponibles. Veuillez réessayer plus tard.",
	},
}
