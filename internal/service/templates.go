package service

// Supported rewrite styles.
const (
	StylePolite       = "polite"
	StyleProfessional = "professional"
	StyleFriendly     = "friendly"
	StyleWarning      = "warning"
)

// templates maps style -> intent -> candidate messages. Every style covers
// every intent including the default fallback, so a lookup never misses.
var templates = map[string]map[string][]string{
	StylePolite: {
		IntentUrge: {
			"Hello! I hope this message finds you well. I wanted to gently follow up on the matter we discussed earlier — have you had a chance to consider it? If you need more time or any further information, please let me know. Looking forward to hearing from you whenever convenient, and thank you for your time!",
			"Hi there! Apologies for the nudge. I was wondering whether there was any news on the item we spoke about previously? I completely understand you may be busy — a reply whenever suits you is perfectly fine. Thank you for your patience!",
		},
		IntentDecline: {
			"Thank you very much for the offer and for thinking of us. After careful consideration, we are unfortunately unable to take this forward at the moment. I hope this does not affect future opportunities to work together — please do stay in touch.",
			"Thank you for taking the time to put this proposal together. Although we won't be proceeding on this occasion, I genuinely appreciate your professionalism, and I hope the right opportunity comes along for us soon. All the best!",
		},
		IntentInquiry: {
			"Hello! I've been following your work with great interest and wanted to ask whether there might be an opportunity to collaborate. If convenient, perhaps we could arrange a short call to discuss the details? Looking forward to your reply!",
			"Dear colleague, I hope you don't mind me reaching out. We would be delighted to explore a possible cooperation with you. Would you have a little time in the coming days for a brief conversation? Thank you for considering it!",
		},
		IntentNotice: {
			"Hello! I'd like to share an update on the project. Due to recent circumstances we need to make a few adjustments to the original plan. We are actively working through the details and expect to be back on schedule shortly. Please don't hesitate to reach out with any questions — thank you for your understanding!",
			"Dear partner, thank you for your continued trust and support. I'm writing to let you know about a small change to our arrangements. We will keep any impact on you to a minimum and stay in close contact throughout. Please contact us if you'd like more detail.",
		},
		IntentDefault: {
			"Hello! Thank you for your message — I've read it carefully. I will look into the matter right away and let you know as soon as there is progress. Please feel free to contact me with any questions. Wishing you a pleasant day!",
			"Hi! Many thanks for getting in touch. I'll give every point you raised proper attention and do everything I can to help. Looking forward to working together!",
		},
	},
	StyleProfessional: {
		IntentUrge: {
			"Dear Sir or Madam,\n\nI am writing to confirm the next steps regarding the matter previously discussed. Kindly provide your feedback at your earliest convenience so that we may proceed as planned.\n\nShould anything require coordination, please advise.\n\nKind regards",
			"Hello,\n\nFurther to our earlier correspondence, this is a status follow-up. Please confirm the outstanding details by the agreed date to keep the project on schedule.\n\nI look forward to your reply.",
		},
		IntentDecline: {
			"Dear Sir or Madam,\n\nThank you for the proposal. Following an internal review, we have concluded that it does not align with our current business requirements, and we will not be proceeding at this time.\n\nWe appreciate your understanding and hope to find an opportunity to work together in the future.\n\nKind regards",
			"Hello,\n\nAfter careful consideration we have decided not to adopt the present proposal. This decision reflects current business priorities rather than the quality of the submission.\n\nThank you for your effort; we look forward to future cooperation.",
		},
		IntentInquiry: {
			"Dear Sir or Madam,\n\nOur organisation is exploring opportunities in your field and would welcome a discussion regarding possible cooperation.\n\nIf this is of interest, please suggest a convenient time for a meeting and I will present the proposed framework in detail.\n\nI look forward to your reply.\n\nKind regards",
			"Hello,\n\nWe are aware of your expertise in this area and would like to discuss a potential engagement. Would you be available for a short business call in the coming days?\n\nAwaiting your response.",
		},
		IntentNotice: {
			"Dear Sir or Madam,\n\nPlease be advised of an important update regarding the project. Owing to recent developments, the original arrangement will be revised. Measures have been taken to minimise any impact.\n\nFor questions, please contact the project lead.\n\nKind regards",
			"Hello,\n\nPlease note the following change takes effect shortly; details are attached. All parties concerned are asked to take note and prepare accordingly. For further information, contact the undersigned.",
		},
		IntentDefault: {
			"Dear Sir or Madam,\n\nThank you for your correspondence. The matter you raised has been noted and will be handled promptly. You will be informed of progress in due course.\n\nShould you have further requirements, please do not hesitate to contact me.\n\nKind regards",
			"Hello,\n\nYour message has been received, with thanks. I will process the matter and respond within the stated timeframe. For urgent issues, please use the contact details provided.",
		},
	},
	StyleFriendly: {
		IntentUrge: {
			"Hey! How have you been? 😊 Just wanted to check in about that thing we talked about — any thoughts yet? No rush at all, whenever you get a moment is totally fine!",
			"Hi hi! Remembered our earlier chat and was curious where you landed on it. If anything's unclear just ping me and we can figure it out together. Can't wait to hear from you! 🎉",
		},
		IntentDecline: {
			"Hey! First off, thanks so much for thinking of me! Sadly I can't make this one work — too many plates spinning right now 😅 But that changes nothing for the future, count me in next time!",
			"Aw, thank you for the invite! I can't say yes this time, but I really appreciate you asking. Hope we get plenty more chances to team up down the road 👍",
		},
		IntentInquiry: {
			"Hey there! 😊 What you folks are building looks seriously cool! Any chance we could chat about working together? Drop me a line whenever — would love to meet you!",
			"Hi! I've been following your work for a while and it's honestly great. Wondering if there's room for a collab? If you're up for it, let's grab a time to talk — promise it'll be worth it! 😄",
		},
		IntentNotice: {
			"Hey! Quick heads-up — we need to tweak a couple of things on our plan. Don't worry, it's all under control! Any questions, just shout and we'll sort it out together 💪",
			"Hi folks! Small update to share: a little change is coming our way. Nothing to stress about, everything's on track! Grab me anytime if you want details — onwards! 🌟",
		},
		IntentDefault: {
			"Hey! Got your message — thanks for reaching out! I'll take a look and get back to you soon. Anything you need in the meantime, just ping me. Have an awesome day ☀️",
			"Hi there! 😊 Thanks for the note, on it right away! If there's anything I can help with, just say the word and we'll figure it out. Cheers!",
		},
	},
	StyleWarning: {
		IntentUrge: {
			"IMPORTANT REMINDER\n\nRegarding the matter at hand, multiple requests for a response have been sent without reply. Please note: if no feedback is received by the stated deadline, we will consider the opportunity forfeited and proceed under the applicable contractual terms.\n\nA response before the deadline is required.",
			"⚠️ URGENT FOLLOW-UP NOTICE\n\nThis is a final courtesy reminder. Confirmation of the outstanding item is now seriously overdue, which may result in schedule slippage, additional costs, and damage to the working relationship.\n\nPlease respond within 24 hours, failing which necessary measures will be taken.",
		},
		IntentDecline: {
			"FORMAL NOTICE\n\nFollowing assessment, the submitted proposal is formally rejected. Principal reasons: the terms do not meet our standards, the risk assessment was not passed, and the proposal conflicts with current strategic direction.\n\nThis decision is final and not open to further negotiation.",
			"⚠️ STATEMENT OF REJECTION\n\nPlease be advised that your request has been formally declined after due consideration. No further correspondence on this matter will be entertained.\n\nAny objection must be submitted in writing through official channels.",
		},
		IntentInquiry: {
			"FORMAL ENQUIRY\n\nTo the parties concerned: answers to the following questions are formally required, to be provided truthfully and in writing by the stated date. Failure to respond in time may affect further cooperation between the parties.",
			"⚠️ OFFICIAL LETTER OF ENQUIRY\n\nIrregularities have been identified in the matter referenced, and a formal explanation is hereby requested. Absent a satisfactory explanation, we reserve the right to pursue further legal remedies.\n\nPlease treat this enquiry seriously and respond within the prescribed period.",
		},
		IntentNotice: {
			"SERIOUS WARNING NOTICE\n\n⚠️ Immediate attention required. You are hereby formally notified that unless corrective measures are taken within the stated period, the penalties described will apply.\n\nTreat this notice with urgency and act at once.",
			"FINAL NOTICE\n\nThis is the final warning on the referenced matter. The required actions must be completed before the stated date and time. Failure to comply is at your own risk; no further notice will be given.",
		},
		IntentDefault: {
			"OFFICIAL NOTICE\n\nYour message has been received and logged. The matter will be handled strictly according to procedure, and the outcome communicated through formal channels. Do not send duplicate requests.",
			"⚠️ ACKNOWLEDGEMENT\n\nReceipt of your correspondence is confirmed. Be advised that all communications on this matter are recorded and will be processed in accordance with the applicable rules.",
		},
	},
}
