package main

import (
	"log"
	"time"

	"offer-management-api/config"
	"offer-management-api/models"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

type namespaceSeed struct {
	Name        string
	Label       string
	Scope       string
	Description string
}

var namespaceSeeds = []namespaceSeed{
	// Offer placeholders
	{"product_name", "Nome do Produto", models.ScopeOffer, "Nome completo do produto em oferta"},
	{"price", "Preço", models.ScopeOffer, "Preço da oferta"},
	{"old_price", "Preço Anterior", models.ScopeOffer, "Preço antes do desconto"},
	{"discount", "Desconto", models.ScopeOffer, "Percentual ou valor de desconto"},
	{"vendor_name", "Nome do Vendedor", models.ScopeOffer, "Loja ou marketplace da oferta"},
	{"offer_url", "URL da Oferta", models.ScopeOffer, "Link direto para a oferta"},
	{"category", "Categoria", models.ScopeOffer, "Categoria do produto"},
	{"brand", "Marca", models.ScopeOffer, "Marca ou fabricante do produto"},
	{"description", "Descrição", models.ScopeOffer, "Descrição resumida do produto"},
	{"product_description", "Descrição do Produto", models.ScopeOffer, "Descrição completa do produto"},
	{"descricao", "Descrição (Alias)", models.ScopeOffer, "Alias de description"},
	{"expires_at", "Validade", models.ScopeOffer, "Data de expiração da oferta"},
	{"currency", "Moeda", models.ScopeOffer, "Moeda do preço (BRL, USD, etc.)"},
	{"discounted_price", "Preço com Desconto", models.ScopeOffer, "Preço após aplicar o cupom"},
	{"final_price", "Preço Final (Alias)", models.ScopeOffer, "Alias de discounted_price"},
	{"installments", "Parcelamento", models.ScopeOffer, "Condições de parcelamento da oferta"},

	// Coupon placeholders
	{"coupon_code", "Código do Cupom", models.ScopeCoupon, "Código do cupom de desconto"},
	{"code", "Código (Alias)", models.ScopeCoupon, "Alias de coupon_code"},
	{"seller", "Vendedor", models.ScopeCoupon, "Vendedor do cupom"},
	{"seller_name", "Nome do Vendedor", models.ScopeCoupon, "Nome do vendedor do cupom"},
	{"coupon_expires", "Validade do Cupom", models.ScopeCoupon, "Data de expiração do cupom"},
	{"validade_cupom", "Validade (Alias)", models.ScopeCoupon, "Alias de coupon_expires"},
	{"expira_em", "Expira em (Alias)", models.ScopeCoupon, "Alias de coupon_expires"},
	{"min_purchase_value", "Compra Mínima", models.ScopeCoupon, "Valor mínimo de compra do cupom"},
	{"min_purchase", "Compra Mínima (Alias)", models.ScopeCoupon, "Alias de min_purchase_value"},
	{"coupon_min_purchase", "Compra Mínima (Alias)", models.ScopeCoupon, "Alias de min_purchase_value"},
	{"compra_minima", "Compra Mínima (Alias)", models.ScopeCoupon, "Alias de min_purchase_value"},
	{"valor_minimo", "Valor Mínimo (Alias)", models.ScopeCoupon, "Alias de min_purchase_value"},
	{"coupon_discount_type", "Tipo de Desconto", models.ScopeCoupon, "Tipo de desconto do cupom"},
	{"tipo_desconto", "Tipo de Desconto (Alias)", models.ScopeCoupon, "Alias de coupon_discount_type"},
	{"coupon_discount_value", "Valor do Desconto", models.ScopeCoupon, "Valor do desconto do cupom"},
	{"valor_desconto", "Valor do Desconto (Alias)", models.ScopeCoupon, "Alias de coupon_discount_value"},
	{"max_discount_value", "Limite de Desconto", models.ScopeCoupon, "Valor máximo de desconto do cupom"},
	{"limite_desconto", "Limite de Desconto (Alias)", models.ScopeCoupon, "Alias de max_discount_value"},
	{"coupon_max_discount", "Desconto Máximo (Alias)", models.ScopeCoupon, "Alias de max_discount_value"},

	// Global placeholders
	{"user_name", "Nome do Usuário", models.ScopeGlobal, "Nome do usuário que está publicando"},
	{"today", "Data Atual", models.ScopeGlobal, "Data de hoje"},
	{"time", "Hora Atual", models.ScopeGlobal, "Hora atual"},
	{"user_phone", "Celular do Usuário", models.ScopeGlobal, "Telefone de contato do usuário"},
	{"telefone", "Telefone (Alias)", models.ScopeGlobal, "Alias de user_phone"},
	{"celular", "Celular (Alias)", models.ScopeGlobal, "Alias de user_phone"},
	{"user_address", "Endereço do Usuário", models.ScopeGlobal, "Endereço do usuário"},
	{"endereco", "Endereço (Alias)", models.ScopeGlobal, "Alias de user_address"},
	{"user_website", "Website do Usuário", models.ScopeGlobal, "Site do usuário"},
	{"site", "Site (Alias)", models.ScopeGlobal, "Alias de user_website"},
	{"user_instagram", "Instagram do Usuário", models.ScopeGlobal, "Perfil do Instagram"},
	{"instagram", "Instagram (Alias)", models.ScopeGlobal, "Alias de user_instagram"},
	{"user_facebook", "Facebook do Usuário", models.ScopeGlobal, "Perfil do Facebook"},
	{"facebook", "Facebook (Alias)", models.ScopeGlobal, "Alias de user_facebook"},
	{"user_twitter", "Twitter/X do Usuário", models.ScopeGlobal, "Perfil do Twitter/X"},
	{"twitter", "Twitter (Alias)", models.ScopeGlobal, "Alias de user_twitter"},
	{"user_linkedin", "LinkedIn do Usuário", models.ScopeGlobal, "Perfil do LinkedIn"},
	{"linkedin", "LinkedIn (Alias)", models.ScopeGlobal, "Alias de user_linkedin"},
	{"user_youtube", "YouTube do Usuário", models.ScopeGlobal, "Canal do YouTube"},
	{"youtube", "YouTube (Alias)", models.ScopeGlobal, "Alias de user_youtube"},
	{"user_tiktok", "TikTok do Usuário", models.ScopeGlobal, "Perfil do TikTok"},
	{"tiktok", "TikTok (Alias)", models.ScopeGlobal, "Alias de user_tiktok"},
}

type networkSeed struct {
	Network string
	Prefix  string
	Suffix  string
}

var networkSeeds = []networkSeed{
	{"instagram", "", "#ofertas #descontos #promoção"},
	{"facebook", "🔥 OFERTA IMPERDÍVEL!\n\n", "\n\n👍 Curta nossa página para não perder promoções!"},
	{"whatsapp", "💰 *PROMOÇÃO*\n\n", "\n\n_Compartilhe com quem precisa!_"},
	{"telegram", "📢 NOVA OFERTA!\n\n", "\n\n🔔 Ative as notificações do canal!"},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()

	now := time.Now()
	created, skipped := 0, 0

	for _, seed := range namespaceSeeds {
		var existing models.Namespace
		err := config.DB.Where("name = ?", seed.Name).First(&existing).Error
		if err == nil {
			skipped++
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check namespace %s: %v", seed.Name, err)
		}

		description := seed.Description
		namespace := models.Namespace{
			Name:        seed.Name,
			Label:       seed.Label,
			Scope:       seed.Scope,
			Description: &description,
			CreateAt:    now,
			UpdateAt:    now,
		}
		if err := config.DB.Create(&namespace).Error; err != nil {
			log.Fatalf("Failed to create namespace %s: %v", seed.Name, err)
		}
		created++
		log.Printf("Created namespace %s (%s)", seed.Name, seed.Scope)
	}

	log.Printf("Namespaces: %d created, %d already existed", created, skipped)

	for _, seed := range networkSeeds {
		var existing models.SocialNetworkConfig
		err := config.DB.Where("network = ?", seed.Network).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check network %s: %v", seed.Network, err)
		}

		prefix, suffix := seed.Prefix, seed.Suffix
		cfg := models.SocialNetworkConfig{
			Network:    seed.Network,
			PrefixText: &prefix,
			SuffixText: &suffix,
			Active:     true,
		}
		if err := config.DB.Create(&cfg).Error; err != nil {
			log.Fatalf("Failed to create network %s: %v", seed.Network, err)
		}
		log.Printf("Created social network config %s", seed.Network)
	}

	// Default currency setting
	var setting models.AppSetting
	err := config.DB.Where("setting_key = ?", models.SettingDefaultCurrency).First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		value := "BRL"
		setting = models.AppSetting{Key: models.SettingDefaultCurrency, Value: &value}
		if err := config.DB.Create(&setting).Error; err != nil {
			log.Fatalf("Failed to create default currency setting: %v", err)
		}
		log.Println("Default currency set to BRL")
	} else if err != nil {
		log.Fatalf("Failed to check settings: %v", err)
	}

	log.Println("Seed complete")
}
