package schema

// parcels is the column layout of the parcel extract, in file order.
// Appending to an existing parcel table requires this exact order, naming and nullability.
var parcels = Schema{
	{"ParcelKey", Integer, Required},
	{"ParcelNumber", Integer, Required},
	{"ParcelDateSuffix", Integer, Required},
	{"LoadDate", Date, Nullable},
	{"LastUpdate", DateTime, Nullable},
	{"ParcelBrand", String, Required},
	{"NoOfParcels", Integer, Required},
	{"ConsignmentNumber", Integer, Required},
	{"ParcelOfCon", Numeric, Required},
	{"ParcelOfStop", Numeric, Required},
	{"ParcelOfStopOfAccount", Numeric, Required},
	{"ParcelOfStopOfBrand", Numeric, Required},
	{"ParcelOfConOfStop", Numeric, Required},
	{"ParcelOfConOfStopOfAccount", Numeric, Required},
	{"NoOfParcelsDelivered", Integer, Required},
	{"NoOfParcelsWeighed", Integer, Required},
	{"NoOfSingleParcelCons", Integer, Required},
	{"UndeliveredParcels", Integer, Required},
	{"UndeliveredCons", Numeric, Required},
	{"MinChargeCons", Numeric, Required},
	{"MinChargeParcels", Integer, Required},
	{"SortScanPresent", String, Required},
	{"TrailerScanPresent", String, Required},
	{"RelabelPresent", String, Required},
	{"PickupScanPresent", String, Required},
	{"ConfirmedWeight", Numeric, Required},
	{"FirstDeliveryTime", Time, Nullable},
	{"ActualPODTime", Time, Nullable},
	{"TravelledInToteBoxCode", String, Required},
	{"TravelledInToteBoxDesc", String, Required},
	{"DeliveredRouteNumber", String, Required},
	{"NoOfPODEvents", Integer, Required},
	{"NoOfBarcodeScanEvents", Integer, Required},
	{"HubDayActualDate", Date, Nullable},
	{"SortScanTime", Time, Nullable},
	{"SortationHubCode", String, Required},
	{"ParcelRevenue", Numeric, Required},
	{"InsuranceRevenue", Numeric, Required},
	{"MiscellaneousRevenue", Numeric, Required},
	{"FuelSurchargeRevenue", Numeric, Required},
	{"SMSRevenue", Numeric, Required},
	{"EmailRevenue", Numeric, Required},
	{"BasicRevenue", Numeric, Required},
	{"ExcessKiloRevenue", Numeric, Required},
	{"MinimumChargeTopUpRevenue", Numeric, Required},
	{"ContractualLiabilityRevenue", Numeric, Required},
	{"ExtendedLiabilityRevenue", Numeric, Required},
	{"ThirdPartySurchargeRevenue", Numeric, Required},
	{"ThirdPartySurchargeCode", String, Required},
	{"ThirdPartySurchargeDesc", String, Required},
	{"FourthPartySurchargeRevenue", Numeric, Required},
	{"FourthPartySurchargeCode", String, Required},
	{"FourthPartySurchargeDesc", String, Required},
	{"FuelSurchargeDetailRevenue", Numeric, Required},
	{"FuelSurchargeDetailCode", String, Required},
	{"FuelSurchargeDetailDesc", String, Required},
	{"ScottishDeliveryZoneRevenue", Numeric, Required},
	{"TransitCongestionChargeRevenue", Numeric, Required},
	{"HandlingChargeRevenue", Numeric, Required},
	{"FailedCollectionRevenue", Numeric, Required},
	{"DutyOrVatChargeRevenue", Numeric, Required},
	{"CustomsExportCode", String, Required},
	{"CustomsExportDesc", String, Required},
	{"CustomsExportRevenue", Numeric, Required},
	{"SHPNotificationsRevenue", Numeric, Required},
	{"OFDNotificationsRevenue", Numeric, Required},
	{"YCLNotificationsRevenue", Numeric, Required},
	{"PODNotificationsRevenue", Numeric, Required},
	{"ACKNotificationsRevenue", Numeric, Required},
	{"RTCRevenue", Numeric, Required},
	{"ALTAddressRevenue", Numeric, Required},
	{"AbsoluteRevenue", Numeric, Required},
	{"CostedRevenue", Numeric, Required},
	{"DepotCollectionCost", Numeric, Required},
	{"DepotDeliveryCost", Numeric, Required},
	{"LinehaulToHubCost", Numeric, Required},
	{"LinehaulToHubAdditionalCost", Numeric, Required},
	{"LinehaulFromHubCost", Numeric, Required},
	{"HubSortCost", Numeric, Required},
	{"HubGatewayCost", Numeric, Required},
	{"LinehaulGatewayCost", Numeric, Required},
	{"LinehaulFeederCost", Numeric, Required},
	{"DeliveryWarehouseCost", Numeric, Required},
	{"CollectionWarehouseCost", Numeric, Required},
	{"OffshoreCost", Numeric, Required},
	{"InternationalClearanceCost", Numeric, Required},
	{"CentralOverheadCost", Numeric, Required},
	{"StationaryOverheadCost", Numeric, Required},
	{"EquipmentOverheadCost", Numeric, Required},
	{"AutomationOverheadCost", Numeric, Required},
	{"SupportOverheadCost", Numeric, Required},
	{"TotalCosts", Numeric, Required},
	{"NoOfParcelsCosted", Integer, Required},
	{"NoOfConsCosted", Numeric, Required},
	{"PricingBasisCode", String, Required},
	{"PricingBasisDesc", String, Required},
	{"CollectionCommission", Numeric, Required},
	{"LabellingCommission", Numeric, Required},
	{"PartySurchargeCommission", Numeric, Required},
	{"DeliveryCommission", Numeric, Required},
	{"OtherCommission", Numeric, Required},
	{"CurrencyCode", String, Required},
	{"CurrencyRate", Numeric, Required},
	{"RevenueAndCostsAvailable", String, Required},
	{"ProductCode", String, Required},
	{"ProductDesc", String, Required},
	{"ProductGroupCode", String, Required},
	{"ProductGroupDesc", String, Required},
	{"ServiceCode", String, Required},
	{"ServiceDesc", String, Required},
	{"ServiceGeoCode", String, Required},
	{"ServiceGroupCode", String, Required},
	{"ServiceGroupDesc", String, Required},
	{"ParcelTypeCode", String, Required},
	{"ParcelTypeDesc", String, Required},
	{"SortationGroupCode", String, Required},
	{"SortationGroupDesc", String, Required},
	{"InboundOutboundCode", String, Required},
	{"InboundOutboundDesc", String, Required},
	{"CustParcelOutcomeCode", String, Required},
	{"CustParcelOutcomeDesc", String, Required},
	{"CustParcelOutcomeGroupCode", String, Required},
	{"CustParcelOutcomeGroupDesc", String, Required},
	{"CustParcelFailureCauseCode", String, Required},
	{"CustParcelFailureCauseDesc", String, Required},
	{"CustConOutcomeCode", String, Required},
	{"CustConOutcomeDesc", String, Required},
	{"CustConOutcomeGroupCode", String, Required},
	{"CustConOutcomeGroupDesc", String, Required},
	{"CustConFailureCauseCode", String, Required},
	{"CustConFailureCauseDesc", String, Required},
	{"ParcelStatusCode", String, Required},
	{"ParcelStatusDesc", String, Required},
	{"CollectionPointOccCode", String, Required},
	{"CollectionPointOccDesc", String, Required},
	{"CollectionTypeCode", String, Required},
	{"CollectionTypeDesc", String, Required},
	{"LabelMethodCode", String, Required},
	{"LabelMethodDesc", String, Required},
	{"ParcelLabelType", String, Required},
	{"CollectionPostCode", String, Required},
	{"CollectionSector", String, Required},
	{"CollectionOuterSec", String, Required},
	{"CollectionAreaCode", String, Required},
	{"DeliveryPostCode", String, Required},
	{"DeliverySector", String, Required},
	{"DeliveryOuterSec", String, Required},
	{"DeliveryAreaCode", String, Required},
	{"AccountKey", Integer, Nullable},
	{"AccountNumber", String, Required},
	{"AccountName", String, Required},
	{"CustomerNumber", String, Nullable},
	{"CustomerOrAccountNumber", String, Required},
	{"CustomerName", String, Required},
	{"CollectionCountryCode", String, Required},
	{"CollectionCountryDesc", String, Required},
	{"CollectionWorldRegionCode", String, Required},
	{"CollectionWorldRegionDesc", String, Required},
	{"IntlCollectionDepotCode", String, Required},
	{"CollectionZone", String, Required},
	{"DeliveryCountryCode", String, Required},
	{"DeliveryCountryDesc", String, Required},
	{"DeliveryWorldRegionCode", String, Required},
	{"DeliveryWorldRegionDesc", String, Required},
	{"IntlDeliveryDepotCode", String, Required},
	{"DeliveryZone", String, Required},
	{"AnalysisZoneCode", String, Required},
	{"AnalysisZoneDesc", String, Required},
	{"AlignmentDepotNumberInt", Integer, Required},
	{"AlignmentDepotNumber", String, Required},
	{"AlignmentDepotNetwork", Integer, Required},
	{"AlignmentDepotName", String, Required},
	{"AlignmentDepotRegionNumber", String, Required},
	{"AlignmentDepotRegion", String, Required},
	{"CollectionDepotNumberInt", Integer, Required},
	{"CollectionDepotNumber", String, Required},
	{"CollectionDepotNetwork", String, Required},
	{"CollectionDepotName", String, Required},
	{"CollectionDepotRegionNumber", String, Required},
	{"CollectionDepotRegion", String, Required},
	{"DeliveryDepotNumberInt", Integer, Required},
	{"DeliveryDepotNumber", String, Required},
	{"DeliveryDepotNetwork", Integer, Required},
	{"DeliveryDepotName", String, Required},
	{"DeliveryDepotRegionNumber", String, Required},
	{"DeliveryDepotRegion", String, Required},
	{"CollectionActualDate", Date, Nullable},
	{"CollectionYear", String, Required},
	{"CollectionQuarter", String, Required},
	{"CollectionPeriod", String, Required},
	{"CollectionWeek", String, Required},
	{"IntendedDeliveryActualDate", Date, Nullable},
	{"IntendedDeliveryYear", String, Required},
	{"IntendedDeliveryQuarter", String, Required},
	{"IntendedDeliveryPeriod", String, Required},
	{"IntendedDeliveryWeek", String, Required},
	{"ActualCompletionActualDate", Date, Nullable},
	{"ActualCompletionYear", String, Required},
	{"ActualCompletionQuarter", String, Required},
	{"ActualCompletionPeriod", String, Required},
	{"ActualCompletionWeek", String, Required},
	{"AdjustedDeliveryActualDate", Date, Nullable},
	{"AdjustedDeliveryYear", String, Required},
	{"AdjustedDeliveryQuarter", String, Required},
	{"AdjustedDeliveryPeriod", String, Required},
	{"AdjustedDeliveryWeek", String, Required},
	{"ContributionBandCode", String, Required},
	{"ContributionBandDesc", String, Required},
	{"WeightBandCode", String, Required},
	{"WeightBandDesc", String, Required},
	{"DeliveryTimeBandCode", String, Required},
	{"DeliveryTimeBandDesc", String, Required},
	{"DeliveryImagePresentCode", String, Required},
	{"DeliveryImagePresentDesc", String, Required},
	{"HubscanTypeCode", String, Required},
	{"HubscanTypeDesc", String, Required},
	{"ConfirmInDepotCode", String, Required},
	{"ConfirmInDepotDesc", String, Required},
	{"DeliveryPointOccCode", String, Required},
	{"DeliveryPointOccDesc", String, Required},
	{"DeliveryMethodCode", String, Required},
	{"DeliveryMethodDesc", String, Required},
	{"DeliveryResultCode", String, Required},
	{"DeliveryResultDesc", String, Required},
	{"SignatureCaptureCode", String, Required},
	{"SignatureCaptureDesc", String, Required},
	{"NoTraceReasonCode", String, Required},
	{"NoTraceReasonDesc", String, Required},
	{"LeaveOnAuthorityCode", String, Required},
	{"LeaveOnAuthorityDesc", String, Required},
	{"ManagedDeliveryOptionCode", String, Required},
	{"LabellerType", String, Required},
	{"DeliveryChecklist", String, Required},
	{"OFDPresentCode", String, Required},
	{"OFDPresentDesc", String, Required},
	{"DeliveryETACode", String, Required},
	{"DeliveryETADesc", String, Required},
	{"DeliveryNotificationCode", String, Required},
	{"NotificationPresentCode", String, Required},
	{"NotificationPresentDesc", String, Required},
	{"NotificationTypeCode", String, Required},
	{"NotificationTypeDesc", String, Required},
	{"NotificationMethodCode", String, Required},
	{"NotificationMethodDesc", String, Required},
	{"ResponsePresentCode", String, Required},
	{"ResponsePresentDesc", String, Required},
	{"ResponseTypeCode", String, Required},
	{"ResponseTypeDesc", String, Required},
	{"ResponseMethodCode", String, Required},
	{"ResponseMethodDesc", String, Required},
	{"RedeliveryResponseCode", String, Required},
	{"ServiceAdjustmentCode", String, Required},
	{"ServiceAdjustmentDesc", String, Required},
	{"DepotParcelOutcomeCode", String, Required},
	{"DepotParcelOutcomeDesc", String, Required},
	{"DepotParcelOutcomeGroupCode", String, Required},
	{"DepotParcelOutcomeGroupDesc", String, Required},
	{"DepotParcelFailureCauseCode", String, Required},
	{"DepotParcelFailureCauseDesc", String, Required},
	{"DepotConOutcomeCode", String, Required},
	{"DepotConOutcomeDesc", String, Required},
	{"DepotConOutcomeGroupCode", String, Required},
	{"DepotConOutcomeGroupDesc", String, Required},
	{"DepotConFailureCauseCode", String, Required},
	{"DepotConFailureCauseDesc", String, Required},
	{"RedeliveryUpgradeCode", String, Required},
	{"RedeliveryUpgradeDesc", String, Required},
	{"DataBeforeOFD", String, Required},
	{"ImageRequested", String, Required},
	{"DeliveryAttempts", String, Required},
	{"HubScanWindowCode", String, Required},
	{"HubScanWindowDesc", String, Required},
	{"DirectToHubCode", String, Required},
	{"DirectToHubDesc", String, Required},
	{"FirstHubScanTypeCode", String, Required},
	{"FirstHubScanTypeDesc", String, Required},
	{"LocalTrafficCode", String, Required},
	{"LocalTrafficDesc", String, Required},
	{"ChecklistQuestion1Code", String, Required},
	{"ChecklistQuestion1Desc", String, Required},
	{"ChecklistQuestion1Answer", String, Required},
	{"ChecklistQuestion2Code", String, Required},
	{"ChecklistQuestion2Desc", String, Required},
	{"ChecklistQuestion2Answer", String, Required},
	{"ChecklistQuestion3Code", String, Required},
	{"ChecklistQuestion3Desc", String, Required},
	{"ChecklistQuestion3Answer", String, Required},
	{"ChecklistQuestion4Code", String, Required},
	{"ChecklistQuestion4Desc", String, Required},
	{"ChecklistQuestion4Answer", String, Required},
	{"ChecklistQuestion5Code", String, Required},
	{"ChecklistQuestion5Desc", String, Required},
	{"ChecklistQuestion5Answer", String, Required},
	{"ChecklistQuestion6Code", String, Required},
	{"ChecklistQuestion6Desc", String, Required},
	{"ChecklistQuestion6Answer", String, Required},
	{"FirstInvoiceActualDate", Date, Nullable},
	{"FirstInvoiceYear", String, Required},
	{"FirstInvoiceQuarter", String, Required},
	{"FirstInvoicePeriod", String, Required},
	{"FirstInvoiceWeek", String, Required},
	{"LastInvoiceActualDate", Date, Nullable},
	{"LastInvoiceYear", String, Required},
	{"LastInvoiceQuarter", String, Required},
	{"LastInvoicePeriod", String, Required},
	{"LastInvoiceWeek", String, Required},
	{"AccrualActualDate", Date, Nullable},
	{"AccrualYear", String, Required},
	{"AccrualQuarter", String, Required},
	{"AccrualPeriod", String, Required},
	{"AccrualWeek", String, Required},
	{"ClearingTypeCode", String, Required},
	{"ClearingTypeDesc", String, Required},
	{"ClearingBasisCode", String, Required},
	{"ClearingBasisDesc", String, Required},
	{"ClearingStatusCode", String, Required},
	{"ClearingStatusDesc", String, Required},
	{"ClearingAmount", Numeric, Required},
	{"DataPresentAtExportCode", String, Required},
	{"DataPresentAtExportDesc", String, Required},
	{"DataPresentCode", String, Required},
	{"DataPresentDesc", String, Required},
	{"NoOfTransitDays", Integer, Nullable},
	{"TransitDaysRangeCode", String, Required},
	{"TransitDaysRangeDesc", String, Required},
	{"NoOfTransitDaysDiff", Integer, Nullable},
	{"TransitDaysDiffRangeCode", String, Required},
	{"TransitDaysDiffRangeDesc", String, Required},
	{"HubAvoidanceCode", String, Required},
	{"HubAvoidanceDesc", String, Required},
	{"DataShipperCode", String, Required},
	{"DataShipperDesc", String, Required},
	{"RfiActionCode", String, Required},
	{"RfiActionDesc", String, Required},
	{"RfiResponseCode", String, Required},
	{"RfiResponseDesc", String, Required},
	{"PickupCollectionShopCode", String, Required},
	{"PickupCollectionActualDate", Date, Nullable},
	{"PickupCollectionOutcomeCode", String, Required},
	{"PickupCollectionOutcomeDesc", String, Required},
	{"PickupDeliveryShopCode", String, Required},
	{"PickupDeliveryActualDate", Date, Nullable},
	{"PickupDeliveryOutcomeCode", String, Required},
	{"PickupDeliveryOutcomeDesc", String, Required},
	{"PickupDeliveryReasonCode", String, Required},
	{"PickupDeliveryReasonDesc", String, Required},
	{"PickupDaysInShop", Integer, Nullable},
	{"PickupTime", Time, Nullable},
	{"PickupTimeBandCode", String, Required},
	{"PickupTimeBandDesc", String, Required},
	{"PickupDayOfWeekCode", String, Required},
	{"PickupDaysInShopCode", String, Required},
	{"PickupDaysInShopDesc", String, Required},
	{"ActualPODTimeWindowCode", String, Required},
	{"ActualPODTimeWindowDesc", String, Required},
	{"DropOffTime", Time, Nullable},
	{"DropOffTimeBandCode", String, Required},
	{"DropOffTimeBandDesc", String, Required},
	{"SMSDataQualityCode", String, Required},
	{"SMSDataQualityDesc", String, Required},
	{"EmailDataQualityCode", String, Required},
	{"EmailDataQualityDesc", String, Required},
	{"ConsumerChoiceCode", String, Required},
	{"ConsumerChoiceDesc", String, Required},
	{"ConsumerRatingCode", String, Required},
	{"ConsumerRatingDesc", String, Required},
	{"ConsumerCode", String, Required},
	{"DeliveryUDPRN", Integer, Nullable},
	{"ConsumerReturnDepotCode", String, Required},
	{"ConsumerReturnDriver", String, Required},
	{"PreciseOutcomeCode", String, Required},
	{"PreciseOutcomeDesc", String, Required},
	{"SendersConsumerCode", String, Required},
	{"AppVoucherAmount", Numeric, Required},
	{"AppPaymentMethod", String, Required},
	{"SellersCode", String, Required},
	{"SellersName", String, Required},
	{"GroupCustomerName", String, Required},
	{"OriginCountryCode", String, Required},
	{"OriginCountryDesc", String, Required},
	{"OriginDepot", String, Required},
	{"PerishableDate", Date, Nullable},
	{"PriorityAccountCode", String, Required},
	{"PriorityPropertyCode", String, Required},
	{"ClickAndCollect", String, Required},
	{"DataProcessedDate", Date, Nullable},
	{"DataProcessedTime", Time, Nullable},
	{"CollectionTime", Time, Nullable},
	{"ShopTargetDate", Date, Nullable},
	{"PreciseTargetDate", Date, Nullable},
	{"CustomerRef1", String, Required},
	{"AEOComplianceCode", String, Required},
	{"AEOComplianceDesc", String, Required},
	{"CollectionUKActualDate", Date, Nullable},
	{"VolumiserHub", String, Nullable},
	{"VolumiserType", String, Nullable},
	{"VolumiserParcelType", String, Nullable},
	{"VolumiserLength", Integer, Required},
	{"VolumiserGirth", Integer, Required},
	{"ClaimOutcomeCode", String, Nullable},
	{"ClaimOutcomeDesc", String, Nullable},
	{"ClaimOutcomeValue", Numeric, Required},
	{"PodOutcome", String, Nullable},
	{"PodOutcomeDesc", String, Nullable},
	{"ParcelTypeExclVolumiser", String, Required},
	{"FirstHubScanUserName", String, Required},
	{"PartnerWeight", Numeric, Nullable},
	{"DeclaredWeight", Numeric, Nullable},
	{"ActualWeight", Numeric, Nullable},
	{"Weighed", String, Required},
	{"DutiesAndTaxes", Numeric, Required},
	{"FailedExportFee", Numeric, Required},
	{"ExportReturnFee", Numeric, Required},
	{"VolumisingRequired", String, Nullable},
	{"OEXFee", Numeric, Required},
	{"ConsumerLikedCode", String, Nullable},
	{"ConsumerParcelComplimentCode", String, Nullable},
	{"ConsumerDriverComplimentCode", String, Nullable},
	{"OriginalProductCode", String, Nullable},
	{"OriginalProductDesc", String, Nullable},
	{"OriginalProductGroupCode", String, Nullable},
	{"OriginalProductGroupDesc", String, Nullable},
	{"BillingServiceCode", String, Nullable},
	{"BillingServiceDesc", String, Nullable},
	{"BillingServiceGroupCode", String, Nullable},
	{"BillingServiceGroupDesc", String, Nullable},
	{"NotAtHomeSamedayOutcomeCode", String, Nullable},
	{"NotAtHomeSamedayOutcomeDesc", String, Nullable},
	{"NotAtHomeSamedayDriver", String, Nullable},
	{"NotAtHomeSamedayShop", String, Nullable},
	{"NotAtHomeSamedayDate", Date, Nullable},
	{"PeakDowngradeCode", Integer, Nullable},
	{"RelovedOutcomeCode", String, Nullable},
	{"RelovedOutcomeDesc", String, Nullable},
	{"RelovedOriginAccountNumber", String, Required},
	{"Class1HGVChargeRevenue", Numeric, Required},
	{"NonCompatibleChargeRevenue", Numeric, Required},
	{"PeakChargeRevenue", Numeric, Required},
	{"HubBoxIntegration", String, Required},
	{"FirstCADDate", Date, Nullable},
	{"FirstCADTime", Time, Nullable},
}
