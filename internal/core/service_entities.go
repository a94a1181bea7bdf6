package core

import "context"

// SaveBank persists a new bank.
func (s *Service) SaveBank(ctx context.Context, bank Bank, actor Actor) (Bank, Result, error) {
	return saveRecord(ctx, s, bank, actor)
}

// UpdateBank replaces an existing bank.
func (s *Service) UpdateBank(ctx context.Context, bank Bank, actor Actor) (Bank, Result, error) {
	return updateRecord(ctx, s, bank, actor)
}

// SaveOrUpdateBank inserts or updates depending on the id.
func (s *Service) SaveOrUpdateBank(ctx context.Context, bank Bank, actor Actor) (Bank, Result, error) {
	return saveOrUpdateRecord(ctx, s, bank, actor)
}

// DeleteBank removes a bank unless accounts depend on it.
func (s *Service) DeleteBank(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntityBank, id, actor)
}

// GetBank fetches a bank by id.
func (s *Service) GetBank(ctx context.Context, id int64) (Bank, bool) {
	return getRecord[Bank](s, EntityBank, id)
}

// ListBanks returns banks using the supplied paging.
func (s *Service) ListBanks(ctx context.Context, page PageSpec) []Bank {
	return listRecords[Bank](s, EntityBank, page)
}

// FindBank returns the first bank matching the probe's key fields.
func (s *Service) FindBank(ctx context.Context, probe Bank) (Bank, bool) {
	return findRecord(s, probe)
}

// SearchBanks returns banks loosely matching the probe.
func (s *Service) SearchBanks(ctx context.Context, probe Bank, page PageSpec) []Bank {
	return searchRecords(s, probe, page)
}

// SaveBankAccount persists a new bank account.
func (s *Service) SaveBankAccount(ctx context.Context, account BankAccount, actor Actor) (BankAccount, Result, error) {
	return saveRecord(ctx, s, account, actor)
}

// UpdateBankAccount replaces an existing bank account.
func (s *Service) UpdateBankAccount(ctx context.Context, account BankAccount, actor Actor) (BankAccount, Result, error) {
	return updateRecord(ctx, s, account, actor)
}

// SaveOrUpdateBankAccount inserts or updates depending on the id.
func (s *Service) SaveOrUpdateBankAccount(ctx context.Context, account BankAccount, actor Actor) (BankAccount, Result, error) {
	return saveOrUpdateRecord(ctx, s, account, actor)
}

// DeleteBankAccount removes a bank account.
func (s *Service) DeleteBankAccount(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntityBankAccount, id, actor)
}

// GetBankAccount fetches a bank account by id.
func (s *Service) GetBankAccount(ctx context.Context, id int64) (BankAccount, bool) {
	return getRecord[BankAccount](s, EntityBankAccount, id)
}

// ListBankAccounts returns bank accounts using the supplied paging.
func (s *Service) ListBankAccounts(ctx context.Context, page PageSpec) []BankAccount {
	return listRecords[BankAccount](s, EntityBankAccount, page)
}

// FindBankAccount returns the first account matching the probe's key fields.
func (s *Service) FindBankAccount(ctx context.Context, probe BankAccount) (BankAccount, bool) {
	return findRecord(s, probe)
}

// SearchBankAccounts returns accounts loosely matching the probe.
func (s *Service) SearchBankAccounts(ctx context.Context, probe BankAccount, page PageSpec) []BankAccount {
	return searchRecords(s, probe, page)
}

// SaveBrand persists a new brand.
func (s *Service) SaveBrand(ctx context.Context, brand Brand, actor Actor) (Brand, Result, error) {
	return saveRecord(ctx, s, brand, actor)
}

// UpdateBrand replaces an existing brand.
func (s *Service) UpdateBrand(ctx context.Context, brand Brand, actor Actor) (Brand, Result, error) {
	return updateRecord(ctx, s, brand, actor)
}

// SaveOrUpdateBrand inserts or updates depending on the id.
func (s *Service) SaveOrUpdateBrand(ctx context.Context, brand Brand, actor Actor) (Brand, Result, error) {
	return saveOrUpdateRecord(ctx, s, brand, actor)
}

// DeleteBrand removes a brand unless proposals depend on it.
func (s *Service) DeleteBrand(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntityBrand, id, actor)
}

// GetBrand fetches a brand by id.
func (s *Service) GetBrand(ctx context.Context, id int64) (Brand, bool) {
	return getRecord[Brand](s, EntityBrand, id)
}

// ListBrands returns brands using the supplied paging.
func (s *Service) ListBrands(ctx context.Context, page PageSpec) []Brand {
	return listRecords[Brand](s, EntityBrand, page)
}

// FindBrand returns the first brand matching the probe's key fields.
func (s *Service) FindBrand(ctx context.Context, probe Brand) (Brand, bool) {
	return findRecord(s, probe)
}

// SearchBrands returns brands loosely matching the probe.
func (s *Service) SearchBrands(ctx context.Context, probe Brand, page PageSpec) []Brand {
	return searchRecords(s, probe, page)
}

// SaveChannel persists a new sales channel.
func (s *Service) SaveChannel(ctx context.Context, channel Channel, actor Actor) (Channel, Result, error) {
	return saveRecord(ctx, s, channel, actor)
}

// UpdateChannel replaces an existing channel.
func (s *Service) UpdateChannel(ctx context.Context, channel Channel, actor Actor) (Channel, Result, error) {
	return updateRecord(ctx, s, channel, actor)
}

// SaveOrUpdateChannel inserts or updates depending on the id.
func (s *Service) SaveOrUpdateChannel(ctx context.Context, channel Channel, actor Actor) (Channel, Result, error) {
	return saveOrUpdateRecord(ctx, s, channel, actor)
}

// DeleteChannel removes a channel unless proposals depend on it.
func (s *Service) DeleteChannel(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntityChannel, id, actor)
}

// GetChannel fetches a channel by id.
func (s *Service) GetChannel(ctx context.Context, id int64) (Channel, bool) {
	return getRecord[Channel](s, EntityChannel, id)
}

// ListChannels returns channels using the supplied paging.
func (s *Service) ListChannels(ctx context.Context, page PageSpec) []Channel {
	return listRecords[Channel](s, EntityChannel, page)
}

// FindChannel returns the first channel matching the probe's key fields.
func (s *Service) FindChannel(ctx context.Context, probe Channel) (Channel, bool) {
	return findRecord(s, probe)
}

// SearchChannels returns channels loosely matching the probe.
func (s *Service) SearchChannels(ctx context.Context, probe Channel, page PageSpec) []Channel {
	return searchRecords(s, probe, page)
}

// SaveSource persists a new lead source.
func (s *Service) SaveSource(ctx context.Context, source Source, actor Actor) (Source, Result, error) {
	return saveRecord(ctx, s, source, actor)
}

// UpdateSource replaces an existing lead source.
func (s *Service) UpdateSource(ctx context.Context, source Source, actor Actor) (Source, Result, error) {
	return updateRecord(ctx, s, source, actor)
}

// SaveOrUpdateSource inserts or updates depending on the id.
func (s *Service) SaveOrUpdateSource(ctx context.Context, source Source, actor Actor) (Source, Result, error) {
	return saveOrUpdateRecord(ctx, s, source, actor)
}

// DeleteSource removes a lead source.
func (s *Service) DeleteSource(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntitySource, id, actor)
}

// GetSource fetches a lead source by id.
func (s *Service) GetSource(ctx context.Context, id int64) (Source, bool) {
	return getRecord[Source](s, EntitySource, id)
}

// ListSources returns lead sources using the supplied paging.
func (s *Service) ListSources(ctx context.Context, page PageSpec) []Source {
	return listRecords[Source](s, EntitySource, page)
}

// FindSource returns the first source matching the probe's key fields.
func (s *Service) FindSource(ctx context.Context, probe Source) (Source, bool) {
	return findRecord(s, probe)
}

// SearchSources returns sources loosely matching the probe.
func (s *Service) SearchSources(ctx context.Context, probe Source, page PageSpec) []Source {
	return searchRecords(s, probe, page)
}

// SavePaymentRule persists a new payment rule.
func (s *Service) SavePaymentRule(ctx context.Context, rule PaymentRule, actor Actor) (PaymentRule, Result, error) {
	return saveRecord(ctx, s, rule, actor)
}

// UpdatePaymentRule replaces an existing payment rule.
func (s *Service) UpdatePaymentRule(ctx context.Context, rule PaymentRule, actor Actor) (PaymentRule, Result, error) {
	return updateRecord(ctx, s, rule, actor)
}

// SaveOrUpdatePaymentRule inserts or updates depending on the id.
func (s *Service) SaveOrUpdatePaymentRule(ctx context.Context, rule PaymentRule, actor Actor) (PaymentRule, Result, error) {
	return saveOrUpdateRecord(ctx, s, rule, actor)
}

// DeletePaymentRule removes a payment rule.
func (s *Service) DeletePaymentRule(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntityPaymentRule, id, actor)
}

// GetPaymentRule fetches a payment rule by id.
func (s *Service) GetPaymentRule(ctx context.Context, id int64) (PaymentRule, bool) {
	return getRecord[PaymentRule](s, EntityPaymentRule, id)
}

// ListPaymentRules returns payment rules using the supplied paging.
func (s *Service) ListPaymentRules(ctx context.Context, page PageSpec) []PaymentRule {
	return listRecords[PaymentRule](s, EntityPaymentRule, page)
}

// FindPaymentRule returns the first rule matching the probe's key fields.
func (s *Service) FindPaymentRule(ctx context.Context, probe PaymentRule) (PaymentRule, bool) {
	return findRecord(s, probe)
}

// SearchPaymentRules returns rules loosely matching the probe.
func (s *Service) SearchPaymentRules(ctx context.Context, probe PaymentRule, page PageSpec) []PaymentRule {
	return searchRecords(s, probe, page)
}

// SavePriceList persists a new price list.
func (s *Service) SavePriceList(ctx context.Context, list PriceList, actor Actor) (PriceList, Result, error) {
	return saveRecord(ctx, s, list, actor)
}

// UpdatePriceList replaces an existing price list.
func (s *Service) UpdatePriceList(ctx context.Context, list PriceList, actor Actor) (PriceList, Result, error) {
	return updateRecord(ctx, s, list, actor)
}

// SaveOrUpdatePriceList inserts or updates depending on the id.
func (s *Service) SaveOrUpdatePriceList(ctx context.Context, list PriceList, actor Actor) (PriceList, Result, error) {
	return saveOrUpdateRecord(ctx, s, list, actor)
}

// DeletePriceList removes a price list unless price items depend on it.
func (s *Service) DeletePriceList(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntityPriceList, id, actor)
}

// GetPriceList fetches a price list by id.
func (s *Service) GetPriceList(ctx context.Context, id int64) (PriceList, bool) {
	return getRecord[PriceList](s, EntityPriceList, id)
}

// ListPriceLists returns price lists using the supplied paging.
func (s *Service) ListPriceLists(ctx context.Context, page PageSpec) []PriceList {
	return listRecords[PriceList](s, EntityPriceList, page)
}

// FindPriceList returns the first list matching the probe's key fields.
func (s *Service) FindPriceList(ctx context.Context, probe PriceList) (PriceList, bool) {
	return findRecord(s, probe)
}

// SearchPriceLists returns lists loosely matching the probe.
func (s *Service) SearchPriceLists(ctx context.Context, probe PriceList, page PageSpec) []PriceList {
	return searchRecords(s, probe, page)
}

// SaveItem persists a new item.
func (s *Service) SaveItem(ctx context.Context, item Item, actor Actor) (Item, Result, error) {
	return saveRecord(ctx, s, item, actor)
}

// UpdateItem replaces an existing item.
func (s *Service) UpdateItem(ctx context.Context, item Item, actor Actor) (Item, Result, error) {
	return updateRecord(ctx, s, item, actor)
}

// SaveOrUpdateItem inserts or updates depending on the id.
func (s *Service) SaveOrUpdateItem(ctx context.Context, item Item, actor Actor) (Item, Result, error) {
	return saveOrUpdateRecord(ctx, s, item, actor)
}

// DeleteItem removes an item unless price items depend on it.
func (s *Service) DeleteItem(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntityItem, id, actor)
}

// GetItem fetches an item by id.
func (s *Service) GetItem(ctx context.Context, id int64) (Item, bool) {
	return getRecord[Item](s, EntityItem, id)
}

// ListItems returns items using the supplied paging.
func (s *Service) ListItems(ctx context.Context, page PageSpec) []Item {
	return listRecords[Item](s, EntityItem, page)
}

// FindItem returns the first item matching the probe's key fields.
func (s *Service) FindItem(ctx context.Context, probe Item) (Item, bool) {
	return findRecord(s, probe)
}

// SearchItems returns items loosely matching the probe.
func (s *Service) SearchItems(ctx context.Context, probe Item, page PageSpec) []Item {
	return searchRecords(s, probe, page)
}

// SavePriceItem persists a new price item.
func (s *Service) SavePriceItem(ctx context.Context, priceItem PriceItem, actor Actor) (PriceItem, Result, error) {
	return saveRecord(ctx, s, priceItem, actor)
}

// UpdatePriceItem replaces an existing price item.
func (s *Service) UpdatePriceItem(ctx context.Context, priceItem PriceItem, actor Actor) (PriceItem, Result, error) {
	return updateRecord(ctx, s, priceItem, actor)
}

// SaveOrUpdatePriceItem inserts or updates depending on the id.
func (s *Service) SaveOrUpdatePriceItem(ctx context.Context, priceItem PriceItem, actor Actor) (PriceItem, Result, error) {
	return saveOrUpdateRecord(ctx, s, priceItem, actor)
}

// DeletePriceItem removes a price item.
func (s *Service) DeletePriceItem(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntityPriceItem, id, actor)
}

// GetPriceItem fetches a price item by id.
func (s *Service) GetPriceItem(ctx context.Context, id int64) (PriceItem, bool) {
	return getRecord[PriceItem](s, EntityPriceItem, id)
}

// ListPriceItems returns price items using the supplied paging.
func (s *Service) ListPriceItems(ctx context.Context, page PageSpec) []PriceItem {
	return listRecords[PriceItem](s, EntityPriceItem, page)
}

// FindPriceItem returns the first entry matching the probe's key fields.
func (s *Service) FindPriceItem(ctx context.Context, probe PriceItem) (PriceItem, bool) {
	return findRecord(s, probe)
}

// SearchPriceItems returns entries loosely matching the probe.
func (s *Service) SearchPriceItems(ctx context.Context, probe PriceItem, page PageSpec) []PriceItem {
	return searchRecords(s, probe, page)
}

// SavePerson persists a new person.
func (s *Service) SavePerson(ctx context.Context, person Person, actor Actor) (Person, Result, error) {
	return saveRecord(ctx, s, person, actor)
}

// UpdatePerson replaces an existing person.
func (s *Service) UpdatePerson(ctx context.Context, person Person, actor Actor) (Person, Result, error) {
	return updateRecord(ctx, s, person, actor)
}

// SaveOrUpdatePerson inserts or updates depending on the id.
func (s *Service) SaveOrUpdatePerson(ctx context.Context, person Person, actor Actor) (Person, Result, error) {
	return saveOrUpdateRecord(ctx, s, person, actor)
}

// DeletePerson removes a person unless accounts or proposal details depend
// on them.
func (s *Service) DeletePerson(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntityPerson, id, actor)
}

// GetPerson fetches a person by id.
func (s *Service) GetPerson(ctx context.Context, id int64) (Person, bool) {
	return getRecord[Person](s, EntityPerson, id)
}

// ListPersons returns persons using the supplied paging.
func (s *Service) ListPersons(ctx context.Context, page PageSpec) []Person {
	return listRecords[Person](s, EntityPerson, page)
}

// FindPerson returns the first person matching the probe's key fields.
func (s *Service) FindPerson(ctx context.Context, probe Person) (Person, bool) {
	return findRecord(s, probe)
}

// SearchPersons returns persons loosely matching the probe.
func (s *Service) SearchPersons(ctx context.Context, probe Person, page PageSpec) []Person {
	return searchRecords(s, probe, page)
}

// SaveCustomer persists a new customer.
func (s *Service) SaveCustomer(ctx context.Context, customer Customer, actor Actor) (Customer, Result, error) {
	return saveRecord(ctx, s, customer, actor)
}

// UpdateCustomer replaces an existing customer.
func (s *Service) UpdateCustomer(ctx context.Context, customer Customer, actor Actor) (Customer, Result, error) {
	return updateRecord(ctx, s, customer, actor)
}

// SaveOrUpdateCustomer inserts or updates depending on the id.
func (s *Service) SaveOrUpdateCustomer(ctx context.Context, customer Customer, actor Actor) (Customer, Result, error) {
	return saveOrUpdateRecord(ctx, s, customer, actor)
}

// DeleteCustomer removes a customer unless holdings depend on it.
func (s *Service) DeleteCustomer(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntityCustomer, id, actor)
}

// GetCustomer fetches a customer by id.
func (s *Service) GetCustomer(ctx context.Context, id int64) (Customer, bool) {
	return getRecord[Customer](s, EntityCustomer, id)
}

// ListCustomers returns customers using the supplied paging.
func (s *Service) ListCustomers(ctx context.Context, page PageSpec) []Customer {
	return listRecords[Customer](s, EntityCustomer, page)
}

// FindCustomer returns the first customer matching the probe's key fields.
func (s *Service) FindCustomer(ctx context.Context, probe Customer) (Customer, bool) {
	return findRecord(s, probe)
}

// SearchCustomers returns customers loosely matching the probe.
func (s *Service) SearchCustomers(ctx context.Context, probe Customer, page PageSpec) []Customer {
	return searchRecords(s, probe, page)
}

// SaveHolding persists a new holding.
func (s *Service) SaveHolding(ctx context.Context, holding Holding, actor Actor) (Holding, Result, error) {
	return saveRecord(ctx, s, holding, actor)
}

// UpdateHolding replaces an existing holding.
func (s *Service) UpdateHolding(ctx context.Context, holding Holding, actor Actor) (Holding, Result, error) {
	return updateRecord(ctx, s, holding, actor)
}

// SaveOrUpdateHolding inserts or updates depending on the id.
func (s *Service) SaveOrUpdateHolding(ctx context.Context, holding Holding, actor Actor) (Holding, Result, error) {
	return saveOrUpdateRecord(ctx, s, holding, actor)
}

// DeleteHolding removes a holding.
func (s *Service) DeleteHolding(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntityHolding, id, actor)
}

// GetHolding fetches a holding by id.
func (s *Service) GetHolding(ctx context.Context, id int64) (Holding, bool) {
	return getRecord[Holding](s, EntityHolding, id)
}

// ListHoldings returns holdings using the supplied paging.
func (s *Service) ListHoldings(ctx context.Context, page PageSpec) []Holding {
	return listRecords[Holding](s, EntityHolding, page)
}

// FindHolding returns the first holding matching the probe's key fields.
func (s *Service) FindHolding(ctx context.Context, probe Holding) (Holding, bool) {
	return findRecord(s, probe)
}

// SearchHoldings returns holdings loosely matching the probe.
func (s *Service) SearchHoldings(ctx context.Context, probe Holding, page PageSpec) []Holding {
	return searchRecords(s, probe, page)
}

// SaveProposal persists a new proposal.
func (s *Service) SaveProposal(ctx context.Context, proposal Proposal, actor Actor) (Proposal, Result, error) {
	return saveRecord(ctx, s, proposal, actor)
}

// UpdateProposal replaces an existing proposal.
func (s *Service) UpdateProposal(ctx context.Context, proposal Proposal, actor Actor) (Proposal, Result, error) {
	return updateRecord(ctx, s, proposal, actor)
}

// SaveOrUpdateProposal inserts or updates depending on the id.
func (s *Service) SaveOrUpdateProposal(ctx context.Context, proposal Proposal, actor Actor) (Proposal, Result, error) {
	return saveOrUpdateRecord(ctx, s, proposal, actor)
}

// DeleteProposal removes a proposal unless details or commissions depend
// on it.
func (s *Service) DeleteProposal(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntityProposal, id, actor)
}

// GetProposal fetches a proposal by id.
func (s *Service) GetProposal(ctx context.Context, id int64) (Proposal, bool) {
	return getRecord[Proposal](s, EntityProposal, id)
}

// ListProposals returns proposals using the supplied paging.
func (s *Service) ListProposals(ctx context.Context, page PageSpec) []Proposal {
	return listRecords[Proposal](s, EntityProposal, page)
}

// FindProposal returns the first proposal matching the probe's key fields.
func (s *Service) FindProposal(ctx context.Context, probe Proposal) (Proposal, bool) {
	return findRecord(s, probe)
}

// SearchProposals returns proposals loosely matching the probe.
func (s *Service) SearchProposals(ctx context.Context, probe Proposal, page PageSpec) []Proposal {
	return searchRecords(s, probe, page)
}

// SaveProposalDetail persists a new proposal detail.
func (s *Service) SaveProposalDetail(ctx context.Context, detail ProposalDetail, actor Actor) (ProposalDetail, Result, error) {
	return saveRecord(ctx, s, detail, actor)
}

// UpdateProposalDetail replaces an existing proposal detail.
func (s *Service) UpdateProposalDetail(ctx context.Context, detail ProposalDetail, actor Actor) (ProposalDetail, Result, error) {
	return updateRecord(ctx, s, detail, actor)
}

// SaveOrUpdateProposalDetail inserts or updates depending on the id.
func (s *Service) SaveOrUpdateProposalDetail(ctx context.Context, detail ProposalDetail, actor Actor) (ProposalDetail, Result, error) {
	return saveOrUpdateRecord(ctx, s, detail, actor)
}

// DeleteProposalDetail removes a proposal detail.
func (s *Service) DeleteProposalDetail(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntityProposalDetail, id, actor)
}

// GetProposalDetail fetches a proposal detail by id.
func (s *Service) GetProposalDetail(ctx context.Context, id int64) (ProposalDetail, bool) {
	return getRecord[ProposalDetail](s, EntityProposalDetail, id)
}

// ListProposalDetails returns proposal details using the supplied paging.
func (s *Service) ListProposalDetails(ctx context.Context, page PageSpec) []ProposalDetail {
	return listRecords[ProposalDetail](s, EntityProposalDetail, page)
}

// SaveProposalCommission persists a new commission.
func (s *Service) SaveProposalCommission(ctx context.Context, commission ProposalCommission, actor Actor) (ProposalCommission, Result, error) {
	return saveRecord(ctx, s, commission, actor)
}

// UpdateProposalCommission replaces an existing commission.
func (s *Service) UpdateProposalCommission(ctx context.Context, commission ProposalCommission, actor Actor) (ProposalCommission, Result, error) {
	return updateRecord(ctx, s, commission, actor)
}

// SaveOrUpdateProposalCommission inserts or updates depending on the id.
func (s *Service) SaveOrUpdateProposalCommission(ctx context.Context, commission ProposalCommission, actor Actor) (ProposalCommission, Result, error) {
	return saveOrUpdateRecord(ctx, s, commission, actor)
}

// DeleteProposalCommission removes a commission. Commission deletions are
// not audited.
func (s *Service) DeleteProposalCommission(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntityProposalCommission, id, actor)
}

// GetProposalCommission fetches a commission by id.
func (s *Service) GetProposalCommission(ctx context.Context, id int64) (ProposalCommission, bool) {
	return getRecord[ProposalCommission](s, EntityProposalCommission, id)
}

// ListProposalCommissions returns commissions using the supplied paging.
func (s *Service) ListProposalCommissions(ctx context.Context, page PageSpec) []ProposalCommission {
	return listRecords[ProposalCommission](s, EntityProposalCommission, page)
}

// SaveUser persists a new user.
func (s *Service) SaveUser(ctx context.Context, user User, actor Actor) (User, Result, error) {
	return saveRecord(ctx, s, user, actor)
}

// UpdateUser replaces an existing user.
func (s *Service) UpdateUser(ctx context.Context, user User, actor Actor) (User, Result, error) {
	return updateRecord(ctx, s, user, actor)
}

// SaveOrUpdateUser inserts or updates depending on the id.
func (s *Service) SaveOrUpdateUser(ctx context.Context, user User, actor Actor) (User, Result, error) {
	return saveOrUpdateRecord(ctx, s, user, actor)
}

// DeleteUser removes a user.
func (s *Service) DeleteUser(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntityUser, id, actor)
}

// GetUser fetches a user by id.
func (s *Service) GetUser(ctx context.Context, id int64) (User, bool) {
	return getRecord[User](s, EntityUser, id)
}

// ListUsers returns users using the supplied paging.
func (s *Service) ListUsers(ctx context.Context, page PageSpec) []User {
	return listRecords[User](s, EntityUser, page)
}

// FindUser returns the first user matching the probe's key fields.
func (s *Service) FindUser(ctx context.Context, probe User) (User, bool) {
	return findRecord(s, probe)
}

// SearchUsers returns users loosely matching the probe.
func (s *Service) SearchUsers(ctx context.Context, probe User, page PageSpec) []User {
	return searchRecords(s, probe, page)
}

// SaveAccessList persists a new access list.
func (s *Service) SaveAccessList(ctx context.Context, list AccessList, actor Actor) (AccessList, Result, error) {
	return saveRecord(ctx, s, list, actor)
}

// UpdateAccessList replaces an existing access list.
func (s *Service) UpdateAccessList(ctx context.Context, list AccessList, actor Actor) (AccessList, Result, error) {
	return updateRecord(ctx, s, list, actor)
}

// SaveOrUpdateAccessList inserts or updates depending on the id.
func (s *Service) SaveOrUpdateAccessList(ctx context.Context, list AccessList, actor Actor) (AccessList, Result, error) {
	return saveOrUpdateRecord(ctx, s, list, actor)
}

// DeleteAccessList removes an access list.
func (s *Service) DeleteAccessList(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntityAccessList, id, actor)
}

// GetAccessList fetches an access list by id.
func (s *Service) GetAccessList(ctx context.Context, id int64) (AccessList, bool) {
	return getRecord[AccessList](s, EntityAccessList, id)
}

// ListAccessLists returns access lists using the supplied paging.
func (s *Service) ListAccessLists(ctx context.Context, page PageSpec) []AccessList {
	return listRecords[AccessList](s, EntityAccessList, page)
}

// FindAccessList returns the first list matching the probe's key fields.
func (s *Service) FindAccessList(ctx context.Context, probe AccessList) (AccessList, bool) {
	return findRecord(s, probe)
}

// SearchAccessLists returns lists loosely matching the probe.
func (s *Service) SearchAccessLists(ctx context.Context, probe AccessList, page PageSpec) []AccessList {
	return searchRecords(s, probe, page)
}

// SaveMenu persists a new menu entry.
func (s *Service) SaveMenu(ctx context.Context, menu Menu, actor Actor) (Menu, Result, error) {
	return saveRecord(ctx, s, menu, actor)
}

// UpdateMenu replaces an existing menu entry.
func (s *Service) UpdateMenu(ctx context.Context, menu Menu, actor Actor) (Menu, Result, error) {
	return updateRecord(ctx, s, menu, actor)
}

// SaveOrUpdateMenu inserts or updates depending on the id.
func (s *Service) SaveOrUpdateMenu(ctx context.Context, menu Menu, actor Actor) (Menu, Result, error) {
	return saveOrUpdateRecord(ctx, s, menu, actor)
}

// DeleteMenu removes a menu unless submenus or access lists depend on it.
func (s *Service) DeleteMenu(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntityMenu, id, actor)
}

// GetMenu fetches a menu by id.
func (s *Service) GetMenu(ctx context.Context, id int64) (Menu, bool) {
	return getRecord[Menu](s, EntityMenu, id)
}

// ListMenus returns menus using the supplied paging.
func (s *Service) ListMenus(ctx context.Context, page PageSpec) []Menu {
	return listRecords[Menu](s, EntityMenu, page)
}

// FindMenu returns the first menu matching the probe's key fields.
func (s *Service) FindMenu(ctx context.Context, probe Menu) (Menu, bool) {
	return findRecord(s, probe)
}

// SearchMenus returns menus loosely matching the probe.
func (s *Service) SearchMenus(ctx context.Context, probe Menu, page PageSpec) []Menu {
	return searchRecords(s, probe, page)
}

// SaveDocument persists a new document.
func (s *Service) SaveDocument(ctx context.Context, document Document, actor Actor) (Document, Result, error) {
	return saveRecord(ctx, s, document, actor)
}

// UpdateDocument replaces an existing document.
func (s *Service) UpdateDocument(ctx context.Context, document Document, actor Actor) (Document, Result, error) {
	return updateRecord(ctx, s, document, actor)
}

// SaveOrUpdateDocument inserts or updates depending on the id.
func (s *Service) SaveOrUpdateDocument(ctx context.Context, document Document, actor Actor) (Document, Result, error) {
	return saveOrUpdateRecord(ctx, s, document, actor)
}

// DeleteDocument removes a document unless proposal details depend on it.
func (s *Service) DeleteDocument(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntityDocument, id, actor)
}

// GetDocument fetches a document by id.
func (s *Service) GetDocument(ctx context.Context, id int64) (Document, bool) {
	return getRecord[Document](s, EntityDocument, id)
}

// ListDocuments returns documents using the supplied paging.
func (s *Service) ListDocuments(ctx context.Context, page PageSpec) []Document {
	return listRecords[Document](s, EntityDocument, page)
}

// FindDocument returns the first document matching the probe's key fields.
func (s *Service) FindDocument(ctx context.Context, probe Document) (Document, bool) {
	return findRecord(s, probe)
}

// SearchDocuments returns documents loosely matching the probe.
func (s *Service) SearchDocuments(ctx context.Context, probe Document, page PageSpec) []Document {
	return searchRecords(s, probe, page)
}
