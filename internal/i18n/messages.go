package i18n

import "fmt"

type entry struct {
	fr string
	en string
}

var catalog = map[string]entry{
	// common
	"common.validation":            {"Données invalides", "Invalid input"},
	"common.invalid_id":            {"Identifiant invalide", "Invalid identifier"},
	"common.internal":              {"Erreur interne du serveur", "Internal server error"},
	"common.not_found":             {"Ressource introuvable", "Resource not found"},
	"common.route_not_found":       {"Route introuvable", "Route not found"},
	"common.body_too_large":        {"Requête trop volumineuse", "Request body too large"},
	"common.translations_required": {"Les traductions française et anglaise sont requises", "Both French and English translations are required"},
	"common.rate_limited":          {"Trop de requêtes, réessayez plus tard", "Too many requests, try again later"},
	"common.created":               {"Créé avec succès", "Created successfully"},
	"common.updated":               {"Mis à jour avec succès", "Updated successfully"},
	"common.deleted":               {"Supprimé avec succès", "Deleted successfully"},
	"common.duplicate":             {"Ce champ est déjà utilisé", "This field is already in use"},

	// auth
	"auth.email_exists":        {"Cet email est déjà utilisé", "Email already in use"},
	"auth.registered":          {"Inscription réussie. Vérifiez votre email pour activer votre compte.", "Registration successful. Check your email to activate your account."},
	"auth.invalid_credentials": {"Identifiants invalides", "Invalid credentials"},
	"auth.email_not_verified":  {"Veuillez vérifier votre adresse email avant de vous connecter", "Please verify your email before logging in"},
	"auth.account_disabled":    {"Ce compte est désactivé", "This account is disabled"},
	"auth.login_success":       {"Connexion réussie", "Login successful"},
	"auth.unauthenticated":     {"Non autorisé, token manquant", "Not authorized, no token"},
	"auth.invalid_token":       {"Token invalide", "Invalid token"},
	"auth.token_expired":       {"Token expiré", "Token expired"},
	"auth.logged_out":          {"Déconnexion réussie", "Logged out successfully"},
	"auth.verify_invalid":      {"Lien de vérification invalide ou expiré", "Invalid or expired verification link"},
	"auth.verified":            {"Email vérifié avec succès", "Email verified successfully"},
	"auth.verification_sent":   {"Si ce compte existe et n'est pas vérifié, un nouvel email a été envoyé", "If this account exists and is not verified, a new email has been sent"},
	"auth.forbidden":           {"Accès refusé", "Access denied"},
	"auth.user_not_found":      {"Utilisateur introuvable", "User not found"},
	"auth.password_too_long":   {"Mot de passe trop long (72 octets maximum)", "Password too long (72 bytes maximum)"},

	// applications
	"application.duplicate":          {"Vous avez déjà postulé à ce stage", "You have already applied to this internship"},
	"application.created":            {"Candidature envoyée avec succès", "Application submitted successfully"},
	"application.not_found":          {"Candidature introuvable", "Application not found"},
	"application.invalid_status":     {"Statut invalide", "Invalid status"},
	"application.status_updated":     {"Statut mis à jour", "Status updated"},
	"application.not_owner":          {"Vous n'êtes pas le propriétaire de cette candidature", "You do not own this application"},
	"application.edit_window_closed": {"La modification n'est plus possible moins de 7 jours avant le début du stage", "Editing is no longer possible less than 7 days before the internship starts"},
	"application.deleted":            {"Candidature supprimée", "Application deleted"},
	"application.updated":            {"Candidature mise à jour", "Application updated"},
	"application.forbidden_access":   {"Vous ne pouvez consulter que vos propres candidatures", "You can only view your own applications"},

	// internships
	"internship.not_found":     {"Stage introuvable", "Internship not found"},
	"internship.created":       {"Stage créé avec succès", "Internship created successfully"},
	"internship.updated":       {"Stage mis à jour avec succès", "Internship updated successfully"},
	"internship.deleted":       {"Stage supprimé avec succès", "Internship deleted successfully"},
	"internship.invalid_dates": {"La date de fin doit suivre la date de début", "The end date must not precede the start date"},
	"internship.image_updated": {"Image mise à jour", "Image updated"},

	// users
	"user.not_found":                {"Utilisateur introuvable", "User not found"},
	"user.updated":                  {"Profil mis à jour", "Profile updated"},
	"user.email_in_use":             {"Cet email est déjà utilisé", "Email already in use"},
	"user.invalid_current_password": {"Mot de passe actuel incorrect", "Current password is incorrect"},
	"user.same_password":            {"Le nouveau mot de passe doit être différent de l'ancien", "The new password must differ from the current one"},
	"user.password_changed":         {"Mot de passe modifié avec succès", "Password changed successfully"},
	"user.avatar_updated":           {"Avatar mis à jour", "Avatar updated"},
	"user.avatar_removed":           {"Avatar supprimé", "Avatar removed"},
	"user.invalid_role":             {"Rôle invalide", "Invalid role"},
	"user.cannot_delete_self":       {"Vous ne pouvez pas supprimer votre propre compte", "You cannot delete your own account"},
	"user.deleted":                  {"Utilisateur supprimé", "User deleted"},
	"user.role_updated":             {"Rôle mis à jour", "Role updated"},
	"user.status_updated":           {"Statut du compte mis à jour", "Account status updated"},

	// uploads
	"upload.missing":      {"Aucun fichier reçu", "No file received"},
	"upload.invalid_type": {"Seules les images sont autorisées", "Only image files are allowed"},
	"upload.too_large":    {"Fichier trop volumineux (5 Mo maximum)", "File too large (5 MB maximum)"},

	// content
	"blog.not_found":        {"Article introuvable", "Blog post not found"},
	"blog.slug_exists":      {"Ce slug est déjà utilisé", "This slug is already in use"},
	"faq.not_found":         {"FAQ introuvable", "FAQ not found"},
	"testimonial.not_found": {"Témoignage introuvable", "Testimonial not found"},
	"testimonial.created":   {"Témoignage envoyé, il sera publié après validation", "Testimonial submitted, it will be published after review"},
	"testimonial.approved":  {"Témoignage approuvé", "Testimonial approved"},
	"contact.sent":          {"Message envoyé avec succès", "Message sent successfully"},
	"contact.not_found":     {"Message introuvable", "Message not found"},
	"contact.replied":       {"Réponse envoyée", "Reply sent"},
	"offer.submitted":       {"Offre envoyée avec succès", "Offer submitted successfully"},
	"offer.not_found":       {"Offre introuvable", "Offer not found"},
	"partner.request_sent":  {"Demande de partenariat envoyée", "Partnership request sent"},
	"partner.not_found":     {"Demande introuvable", "Request not found"},
	"page.not_found":        {"Page introuvable", "Page not found"},
	"page.invalid_slug":     {"Slug invalide", "Invalid slug"},

	// email subjects
	"email.verify.subject":        {"Vérifiez votre adresse email", "Verify your email address"},
	"email.submitted.subject":     {"Confirmation de votre candidature", "Your application confirmation"},
	"email.accepted.subject":      {"Votre candidature a été acceptée", "Your application has been accepted"},
	"email.rejected.subject":      {"Votre candidature a été refusée", "Your application has been rejected"},
	"email.contact_reply.subject": {"Réponse à votre message", "Reply to your message"},
}

// T returns the message for key in l. Extra args are applied with fmt.Sprintf.
// Unknown keys are returned as-is so a missing entry is visible rather than empty.
func T(l Lang, key string, args ...any) string {
	e, ok := catalog[key]
	if !ok {
		return key
	}
	msg := e.fr
	if l == EN && e.en != "" {
		msg = e.en
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Has reports whether key exists in the catalog.
func Has(key string) bool {
	_, ok := catalog[key]
	return ok
}
