package columns

// Settlement report fields. Identifier, text and date fields first, then the
// monetary columns.
const (
	SettlementOrderID         = "order_id"
	SettlementRefundID        = "refund_id"
	SettlementRecordType      = "record_type"
	SettlementBuyerUsername   = "buyer_username"
	SettlementProductName     = "product_name"
	SettlementSKU             = "sku"
	SettlementPaymentMethod   = "payment_method"
	SettlementShippingCarrier = "shipping_carrier"
	SettlementOrderCreatedAt  = "order_created_at"
	SettlementPayoutDate      = "payout_date"
)

// SettlementTable lists every settlement column with Portuguese and English
// header variants.
var SettlementTable = Table{
	{Key: SettlementOrderID, Required: true, Aliases: []string{"ID do pedido", "Order ID", "Nº do pedido", "N.º do pedido", "Order SN", "Número do pedido"}},
	{Key: SettlementRefundID, Aliases: []string{"ID do reembolso", "Refund ID"}},
	{Key: SettlementRecordType, Required: true, Aliases: []string{"Tipo de registro", "Record Type", "Tipo de transação", "Transaction Type", "Tipo", "Type"}},
	{Key: SettlementBuyerUsername, Aliases: []string{"Nome de usuário do comprador", "Username (Buyer)", "Buyer Username", "Comprador"}},
	{Key: SettlementProductName, Aliases: []string{"Nome do produto", "Product Name"}},
	{Key: SettlementSKU, Aliases: []string{"SKU", "Número de referência SKU", "SKU Reference No."}},
	{Key: SettlementPaymentMethod, Aliases: []string{"Método de pagamento", "Forma de pagamento", "Payment Method"}},
	{Key: SettlementShippingCarrier, Aliases: []string{"Transportadora", "Opção de envio", "Shipping Provider", "Shipping Option"}},
	{Key: SettlementOrderCreatedAt, Aliases: []string{"Data de criação do pedido", "Order Creation Date", "Data do pedido", "Order Date"}},
	{Key: SettlementPayoutDate, Aliases: []string{"Data de conclusão do pagamento", "Data de liberação", "Payout Completed Date", "Payout Date", "Release Date"}},

	{Key: "quantity", Aliases: []string{"Quantidade", "Quantity", "Qtd."}},
	{Key: "product_price", Aliases: []string{"Preço original do produto", "Original product price", "Preço do produto", "Product Price"}},
	{Key: "seller_product_discount", Aliases: []string{"Desconto do vendedor no produto", "Seller Product Discount", "Seller Discount"}},
	{Key: "platform_product_rebate", Aliases: []string{"Subsídio da plataforma no produto", "Product Discount Rebate from Platform", "Platform Rebate"}},
	{Key: "bundle_discount", Aliases: []string{"Desconto de combo", "Bundle Deal Discount"}},
	{Key: "refund_amount", Aliases: []string{"Valor do reembolso", "Refund Amount", "Reembolso ao comprador"}},
	{Key: "seller_voucher", Aliases: []string{"Cupom do vendedor", "Voucher Sponsored by Seller", "Seller Voucher"}},
	{Key: "platform_voucher", Aliases: []string{"Cupom da plataforma", "Voucher Sponsored by Platform", "Platform Voucher"}},
	{Key: "seller_coin_cashback", Aliases: []string{"Cashback em moedas do vendedor", "Seller Coin Cash Back"}},
	{Key: "platform_coins", Aliases: []string{"Moedas", "Coins"}},
	{Key: "promotion_rebate", Aliases: []string{"Reembolso de promoção", "Promotion Rebate"}},
	{Key: "buyer_paid_shipping", Aliases: []string{"Frete pago pelo comprador", "Shipping Fee Paid by Buyer", "Buyer Paid Shipping Fee"}},
	{Key: "shipping_rebate", Aliases: []string{"Desconto de frete da plataforma", "Shipping Rebate", "Shipping Fee Rebate"}},
	{Key: "seller_shipping_discount", Aliases: []string{"Desconto de frete do vendedor", "Seller Shipping Discount"}},
	{Key: "actual_shipping_fee", Aliases: []string{"Frete real", "Actual Shipping Fee"}},
	{Key: "deducted_shipping_fee", Aliases: []string{"Frete descontado", "Shipping Fee Deducted"}},
	{Key: "reverse_shipping_fee", Aliases: []string{"Frete reverso", "Reverse Shipping Fee"}},
	{Key: "return_to_seller_fee", Aliases: []string{"Taxa de retorno ao vendedor", "Return to Seller Fee"}},
	{Key: "commission_fee", Aliases: []string{"Taxa de comissão", "Commission Fee"}},
	{Key: "service_fee", Aliases: []string{"Taxa de serviço", "Service Fee"}},
	{Key: "transaction_fee", Aliases: []string{"Taxa de transação", "Transaction Fee"}},
	{Key: "fixed_fee", Aliases: []string{"Taxa fixa", "Fixed Fee", "Taxa por item"}},
	{Key: "processing_fee", Aliases: []string{"Taxa de processamento", "Processing Fee"}},
	{Key: "affiliate_commission", Aliases: []string{"Comissão de afiliados", "Affiliate Commission", "AMS Commission Fee"}},
	{Key: "campaign_fee", Aliases: []string{"Taxa de campanha", "Campaign Fee"}},
	{Key: "installment_fee", Aliases: []string{"Taxa de parcelamento", "Installment Fee"}},
	{Key: "credit_card_fee", Aliases: []string{"Taxa de cartão de crédito", "Credit Card Fee"}},
	{Key: "pix_fee", Aliases: []string{"Taxa Pix", "Pix Fee"}},
	{Key: "other_fees", Aliases: []string{"Outras taxas", "Other Fees"}},
	{Key: "total_fees", Aliases: []string{"Taxas", "Fees", "Total de taxas", "Total Fees"}},
	{Key: "withholding_tax", Aliases: []string{"Imposto retido", "Withholding Tax"}},
	{Key: "sales_tax", Aliases: []string{"Impostos", "Taxes", "Tax"}},
	{Key: "adjustment_amount", Aliases: []string{"Ajuste", "Adjustment Amount", "Adjustment"}},
	{Key: "compensation_amount", Aliases: []string{"Compensação", "Compensation"}},
	{Key: "order_total", Aliases: []string{"Total do pedido", "Order Total"}},
	{Key: "buyer_payment", Aliases: []string{"Valor pago pelo comprador", "Buyer Total Payment", "Buyer Payment"}},
	{Key: "payout_amount", Aliases: []string{"Valor total liberado", "Valor liberado", "Total Released Amount", "Payout Amount", "Escrow Amount"}},
	{Key: "advance_payment_deduction", Aliases: []string{"Antecipação", "Desconto de antecipação", "Advance Payment Deduction", "Early Payout Fee"}},
}

// SaleOrderRecordTypes are the normalized record type values of a sale
// order line. Only these rows are settlements of a sale.
var SaleOrderRecordTypes = map[string]struct{}{
	"order":  {},
	"pedido": {},
}

// Marketplace order export fields.
const (
	OrderID               = "order_id"
	OrderSKU              = "sku"
	OrderProductName      = "product_name"
	OrderVariation        = "variation"
	OrderQuantity         = "quantity"
	OrderGross            = "gross"
	OrderPlatformDiscount = "platform_discount"
	OrderSellerDiscount   = "seller_discount"
	OrderUnitCost         = "unit_cost"
	OrderDate             = "order_date"
	OrderStatus           = "status"
)

// OrderTable is the alias table of a marketplace order export.
var OrderTable = Table{
	{Key: OrderID, Required: true, Aliases: []string{"ID do pedido", "Order ID", "Nº do pedido", "N.º do pedido", "Order SN", "Número do pedido"}},
	{Key: OrderSKU, Aliases: []string{"SKU", "Número de referência SKU", "SKU Reference No.", "SKU da variação", "Variation SKU", "Código SKU"}},
	{Key: OrderProductName, Aliases: []string{"Nome do Produto", "Product Name", "Produto", "Item"}},
	{Key: OrderVariation, Aliases: []string{"Nome da variação", "Variation Name", "Variação", "Variation"}},
	{Key: OrderQuantity, Aliases: []string{"Quantidade", "Quantity", "Qtd.", "Qtd"}},
	{Key: OrderGross, Required: true, Aliases: []string{"Subtotal do produto", "Product Subtotal", "Preço acordado", "Deal Price", "Receita bruta", "Gross Revenue", "Valor total"}},
	{Key: OrderPlatformDiscount, Aliases: []string{"Desconto da plataforma", "Platform Discount", "Cupom da plataforma", "Platform Voucher"}},
	{Key: OrderSellerDiscount, Aliases: []string{"Desconto do vendedor", "Seller Discount", "Cupom do vendedor", "Seller Voucher"}},
	{Key: OrderUnitCost, Aliases: []string{"Custo unitário", "Unit Cost", "Custo", "Cost"}},
	{Key: OrderDate, Aliases: []string{"Data de criação do pedido", "Order Creation Date", "Data do pedido", "Order Date"}},
	{Key: OrderStatus, Aliases: []string{"Status do pedido", "Order Status", "Status"}},
}
