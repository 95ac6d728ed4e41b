// Package i18n holds the message catalog for the Storm admin screens.
// Portuguese is the product's primary language; English is secondary.
package i18n

import "strings"

const defaultLang = "pt"

var translations = map[string]map[string]string{
	"pt": {
		"required":                "Obrigatório",
		"invalid_email":           "Email inválido",
		"invalid_credentials":     "Usuário ou senha inválidos",
		"login_title":             "Entrar",
		"forgot_password":         "Esqueci minha senha",
		"forgot_sent":             "Se o email existir, enviaremos as instruções de redefinição.",
		"reset_title":             "Redefinir senha",
		"reset_success":           "Senha redefinida com sucesso!",
		"first_access_title":      "Primeiro acesso",
		"first_access_hint":       "Por segurança, você precisa alterar sua senha no primeiro acesso.",
		"password_changed":        "Senha alterada com sucesso!",
		"password_too_short":      "A senha deve ter no mínimo 8 caracteres",
		"password_needs_lower":    "A senha deve conter pelo menos uma letra minúscula",
		"password_needs_upper":    "A senha deve conter pelo menos uma letra maiúscula",
		"password_needs_digit":    "A senha deve conter pelo menos um número",
		"password_mismatch":       "As senhas não coincidem",
		"password_current_bad":    "Senha atual incorreta",
		"generic_error":           "Algo deu errado. Tente novamente.",
		"load_error":              "Erro ao carregar dados",
		"coupon_create_error":     "Erro ao criar cupom",
		"coupon_update_error":     "Erro ao atualizar cupom",
		"coupon_delete_error":     "Erro ao excluir cupom",
		"coupon_share_error":      "Erro ao compartilhar cupom",
		"coupon_shared":           "Cupom compartilhado com sucesso!",
		"coupon_select_user":      "Selecione um usuário",
		"user_create_error":       "Erro ao criar usuário",
		"user_update_error":       "Erro ao atualizar usuário",
		"user_delete_error":       "Erro ao excluir usuário",
		"welcome_email_sent":      "Email de boas-vindas enviado com sucesso!",
		"welcome_email_error":     "Erro ao enviar email de boas-vindas",
		"confirm_delete_user":     "Tem certeza que deseja excluir este usuário?",
		"confirm_delete_coupon":   "Tem certeza que deseja excluir este cupom?",
		"no_contract":             "Você não possui um contrato associado. Entre em contato com o administrador.",
		"no_shared_coupons":       "Você ainda não possui cupons compartilhados.",
		"forbidden":               "Você não tem permissão para acessar esta página",
		"deactivate_not_allowed":  "O compartilhamento não permite desativar este cupom",
		"coupon_deactivated":      "Cupom desativado com sucesso!",
		"temp_password_notice":    "Esta senha é exibida apenas uma vez. Anote-a ou envie o email de boas-vindas agora.",
		"user_created":            "Usuário criado com sucesso!",
		"user_updated":            "Usuário atualizado com sucesso!",
		"user_deleted":            "Usuário excluído com sucesso!",
		"coupon_created":          "Cupom criado com sucesso!",
		"coupon_updated":          "Cupom atualizado com sucesso!",
		"coupon_deleted":          "Cupom excluído com sucesso!",
		"nav_dashboard":           "Dashboard",
		"nav_my_coupons":          "Meus Cupons",
		"nav_admin_users":         "Admin Usuários",
		"nav_admin_coupons":       "Admin Cupons",
		"nav_users":               "Usuários",
		"nav_settings":            "Configurações",
		"logout":                  "Sair",
		"password_label":          "Senha",
		"current_password":        "Senha atual",
		"new_password":            "Nova senha",
		"confirm_password":        "Confirmar senha",
		"name_label":              "Nome",
		"role_label":              "Perfil",
		"contract_label":          "Contrato",
		"actions":                 "Ações",
		"save":                    "Salvar",
		"cancel":                  "Cancelar",
		"create":                  "Criar",
		"edit":                    "Editar",
		"delete":                  "Excluir",
		"share":                   "Compartilhar",
		"export":                  "Exportar",
		"search":                  "Buscar",
		"active":                  "Ativo",
		"inactive":                "Inativo",
		"code_label":              "Código",
		"description_label":       "Descrição",
		"discount_label":          "Desconto",
		"valid_from":              "Válido de",
		"valid_until":             "Válido até",
		"uses_label":              "Usos",
		"stats_label":             "Estatísticas",
		"deactivate":              "Desativar",
		"send_welcome":            "Enviar boas-vindas",
		"shared_by":               "Compartilhado por",
		"temp_password_title":     "Senha temporária",
		"back_to_login":           "Voltar para o login",
	},
	"en": {
		"required":                "Required",
		"invalid_email":           "Invalid email",
		"invalid_credentials":     "Invalid email or password",
		"login_title":             "Sign in",
		"forgot_password":         "Forgot my password",
		"forgot_sent":             "If the email exists, reset instructions are on the way.",
		"reset_title":             "Reset password",
		"reset_success":           "Password reset successfully!",
		"first_access_title":      "First access",
		"first_access_hint":       "For your security, you must change your password on first access.",
		"password_changed":        "Password changed successfully!",
		"password_too_short":      "Password must be at least 8 characters",
		"password_needs_lower":    "Password must contain a lowercase letter",
		"password_needs_upper":    "Password must contain an uppercase letter",
		"password_needs_digit":    "Password must contain a digit",
		"password_mismatch":       "Passwords do not match",
		"password_current_bad":    "Current password is incorrect",
		"generic_error":           "Something went wrong. Please try again.",
		"load_error":              "Failed to load data",
		"coupon_create_error":     "Failed to create coupon",
		"coupon_update_error":     "Failed to update coupon",
		"coupon_delete_error":     "Failed to delete coupon",
		"coupon_share_error":      "Failed to share coupon",
		"coupon_shared":           "Coupon shared successfully!",
		"coupon_select_user":      "Select a user",
		"user_create_error":       "Failed to create user",
		"user_update_error":       "Failed to update user",
		"user_delete_error":       "Failed to delete user",
		"welcome_email_sent":      "Welcome email sent successfully!",
		"welcome_email_error":     "Failed to send welcome email",
		"confirm_delete_user":     "Are you sure you want to delete this user?",
		"confirm_delete_coupon":   "Are you sure you want to delete this coupon?",
		"no_contract":             "You have no contract assigned. Please contact an administrator.",
		"no_shared_coupons":       "No coupons have been shared with you yet.",
		"forbidden":               "You do not have permission to access this page",
		"deactivate_not_allowed":  "This share does not allow deactivating the coupon",
		"coupon_deactivated":      "Coupon deactivated successfully!",
		"temp_password_notice":    "This password is shown only once. Write it down or send the welcome email now.",
		"user_created":            "User created successfully!",
		"user_updated":            "User updated successfully!",
		"user_deleted":            "User deleted successfully!",
		"coupon_created":          "Coupon created successfully!",
		"coupon_updated":          "Coupon updated successfully!",
		"coupon_deleted":          "Coupon deleted successfully!",
		"nav_dashboard":           "Dashboard",
		"nav_my_coupons":          "My Coupons",
		"nav_admin_users":         "Admin Users",
		"nav_admin_coupons":       "Admin Coupons",
		"nav_users":               "Users",
		"nav_settings":            "Settings",
		"logout":                  "Sign out",
		"password_label":          "Password",
		"current_password":        "Current password",
		"new_password":            "New password",
		"confirm_password":        "Confirm password",
		"name_label":              "Name",
		"role_label":              "Role",
		"contract_label":          "Contract",
		"actions":                 "Actions",
		"save":                    "Save",
		"cancel":                  "Cancel",
		"create":                  "Create",
		"edit":                    "Edit",
		"delete":                  "Delete",
		"share":                   "Share",
		"export":                  "Export",
		"search":                  "Search",
		"active":                  "Active",
		"inactive":                "Inactive",
		"code_label":              "Code",
		"description_label":       "Description",
		"discount_label":          "Discount",
		"valid_from":              "Valid from",
		"valid_until":             "Valid until",
		"uses_label":              "Uses",
		"stats_label":             "Statistics",
		"deactivate":              "Deactivate",
		"send_welcome":            "Send welcome email",
		"shared_by":               "Shared by",
		"temp_password_title":     "Temporary password",
		"back_to_login":           "Back to sign in",
	},
}

// DetectLanguage picks a supported language from an Accept-Language header,
// falling back to Portuguese.
func DetectLanguage(acceptLanguage string) string {
	for _, part := range strings.Split(acceptLanguage, ",") {
		code := strings.ToLower(strings.TrimSpace(part))
		if i := strings.IndexAny(code, "-;"); i >= 0 {
			code = code[:i]
		}
		if _, ok := translations[code]; ok {
			return code
		}
	}
	return defaultLang
}

// T translates code for the given language. Unknown languages fall back to
// the default catalog; unknown codes fall back to the code itself, which
// keeps missing entries visible instead of blank.
func T(lang, code string) string {
	if m, ok := translations[lang]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := translations[defaultLang][code]; ok {
		return s
	}
	return code
}
